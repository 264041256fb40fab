package entity

// Preferences holds per-account default settings, created in the same
// transaction as the User.
type Preferences struct {
	UserID                  string
	NotificationEmail       bool
	NotificationPush        bool
	PrivacyDonationVisible  bool
	PrivacyVolunteerVisible bool
	Theme                   string
	Language                string
	Timezone                string
}

// DefaultPreferences returns the settings every new account starts with.
func DefaultPreferences(userID string) *Preferences {
	return &Preferences{
		UserID:                  userID,
		NotificationEmail:       true,
		NotificationPush:        true,
		PrivacyDonationVisible:  true,
		PrivacyVolunteerVisible: true,
		Theme:                   "light",
		Language:                "en",
		Timezone:                "UTC",
	}
}
