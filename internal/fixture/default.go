package fixture

import (
	"time"

	"pwned/internal/domain"
)

// Default returns the built-in sample dataset.
func Default() *Dataset {
	pastebinTitle := "syslog"
	pastebinDate := time.Date(2014, 3, 4, 19, 14, 54, 0, time.UTC)

	return &Dataset{
		Breaches: []domain.Breach{
			{
				Name:         "Adobe",
				Title:        "Adobe",
				Domain:       "adobe.com",
				BreachDate:   "2013-10-04",
				AddedDate:    time.Date(2013, 12, 4, 0, 0, 0, 0, time.UTC),
				ModifiedDate: time.Date(2022, 5, 15, 23, 52, 49, 0, time.UTC),
				PwnCount:     152445165,
				Description:  "In October 2013, 153 million Adobe accounts were breached with each containing an internal ID, username, email, encrypted password and a password hint in plain text.",
				DataClasses:  []string{"Email addresses", "Password hints", "Passwords", "Usernames"},
				IsVerified:   true,
				LogoPath:     "https://haveibeenpwned.com/Content/Images/PwnedLogos/Adobe.png",
			},
			{
				Name:         "LinkedIn",
				Title:        "LinkedIn",
				Domain:       "linkedin.com",
				BreachDate:   "2012-05-05",
				AddedDate:    time.Date(2016, 5, 21, 21, 35, 40, 0, time.UTC),
				ModifiedDate: time.Date(2016, 5, 21, 21, 35, 40, 0, time.UTC),
				PwnCount:     164611595,
				Description:  "In May 2016, LinkedIn had 164 million email addresses and passwords exposed.",
				DataClasses:  []string{"Email addresses", "Passwords"},
				IsVerified:   true,
				LogoPath:     "https://haveibeenpwned.com/Content/Images/PwnedLogos/LinkedIn.png",
			},
			{
				Name:         "ExampleForum",
				Title:        "Example Forum",
				Domain:       "forum.example.com",
				BreachDate:   "2019-02-01",
				AddedDate:    time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
				ModifiedDate: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
				PwnCount:     1200,
				Description:  "An unverified list of forum accounts.",
				DataClasses:  []string{"Email addresses", "Usernames"},
			},
		},
		DataClasses: []string{
			"Account balances", "Age groups", "Email addresses", "IP addresses",
			"Password hints", "Passwords", "Phone numbers", "Usernames",
		},
		Accounts: map[string][]domain.BreachName{
			"test@example.com":  {"Adobe"},
			"multi@example.com": {"Adobe", "LinkedIn", "ExampleForum"},
		},
		Pastes: map[string][]domain.PasteAccount{
			"test@example.com": {
				{Source: "Pastebin", ID: "8Q0BvKD8", Title: &pastebinTitle, Date: &pastebinDate, EmailCount: 139},
				{Source: "AdHocUrl", ID: "http://example.com/leak.txt", EmailCount: 42},
			},
		},
		Passwords: map[string]int64{
			"P@ssword": 3861493,
			"password": 9659365,
			"123456":   37359195,
		},
	}
}
