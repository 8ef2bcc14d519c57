package leadscout

// ContactSignals holds contact data mined deterministically from a page
// before any model pass. All slices preserve first-seen order so that
// extraction is reproducible for identical input.
type ContactSignals struct {
	// Emails is the deduplicated set of validated, lower-cased emails.
	Emails []string

	// OwnerEmails and BusinessEmails partition Emails by whether the
	// local part starts with a generic role prefix (info, contact, ...).
	OwnerEmails    []string
	BusinessEmails []string

	// Phones holds deduplicated numbers in canonical (XXX) XXX-XXXX form.
	Phones []string

	// PrimaryPhone is the first discovered phone, or empty.
	PrimaryPhone string

	// Address is the first street address matched in the page text,
	// or empty.
	Address string
}

// FirstOwnerEmail returns the first owner email, or empty.
func (s *ContactSignals) FirstOwnerEmail() string {
	if len(s.OwnerEmails) == 0 {
		return ""
	}
	return s.OwnerEmails[0]
}

// FirstBusinessEmail returns the first business (role-addressed) email,
// or empty.
func (s *ContactSignals) FirstBusinessEmail() string {
	if len(s.BusinessEmails) == 0 {
		return ""
	}
	return s.BusinessEmails[0]
}

// Empty reports whether no signal of any kind was found.
func (s *ContactSignals) Empty() bool {
	return len(s.Emails) == 0 && len(s.Phones) == 0 && s.Address == ""
}
