package client

// Email is carried for identification and notification addressing. Accounts
// are provisioned externally, so validation happened before the value ever
// reached storage.
type Email struct {
	value string
}

// ReconstructEmail rebuilds an Email from storage without re-validating.
func ReconstructEmail(s string) Email {
	return Email{value: s}
}

func (e Email) Value() string {
	return e.value
}
