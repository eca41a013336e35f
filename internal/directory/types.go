package directory

import "strings"

// User mirrors a user record as returned by the directory API.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// Address is the structured location portion of a user record.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo carries coordinates as strings, matching the wire format.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company is the employer portion of a user record.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// Post mirrors a post record associated with a user.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// OneLine returns the address as a single display string, skipping blanks.
func (a Address) OneLine() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.Suite, a.City, a.Zipcode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// WebsiteURL returns the user's website as a full URL. The API serves bare
// hostnames; anything already carrying a scheme is left alone.
func (u User) WebsiteURL() string {
	site := strings.TrimSpace(u.Website)
	if site == "" {
		return ""
	}
	if strings.Contains(site, "://") {
		return site
	}
	return "http://" + site
}
