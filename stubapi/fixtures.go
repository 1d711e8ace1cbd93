package stubapi

import (
	"fmt"
	"strings"

	"github.com/andyle182810/apicheck/reqres"
)

const (
	// DefaultToken is what the demo API hands out on login and register.
	DefaultToken = "QpwL5tke4Pnpja7X4" //nolint:gosec

	avatarURL = "https://reqres.in/img/faces/%d-image.jpg"
)

var userNames = [][2]string{
	{"George", "Bluth"},
	{"Janet", "Weaver"},
	{"Emma", "Wong"},
	{"Eve", "Holt"},
	{"Charles", "Morris"},
	{"Tracey", "Ramos"},
	{"Michael", "Lawson"},
	{"Lindsay", "Ferguson"},
	{"Tobias", "Funke"},
	{"Byron", "Fields"},
	{"George", "Edwards"},
	{"Rachel", "Howell"},
}

// DefaultUsers is the fixed user list served by the live demo API.
func DefaultUsers() []reqres.User {
	users := make([]reqres.User, 0, len(userNames))

	for i, name := range userNames {
		id := i + 1
		users = append(users, reqres.User{
			ID:        id,
			Email:     strings.ToLower(name[0]) + "." + strings.ToLower(name[1]) + "@reqres.in",
			FirstName: name[0],
			LastName:  name[1],
			Avatar:    fmt.Sprintf(avatarURL, id),
		})
	}

	return users
}

// DefaultResources is the fixed "unknown" resource list of the demo API.
func DefaultResources() []reqres.Resource {
	return []reqres.Resource{
		{ID: 1, Name: "cerulean", Year: 2000, Color: "#98B2D1", PantoneValue: "15-4020"},
		{ID: 2, Name: "fuchsia rose", Year: 2001, Color: "#C74375", PantoneValue: "17-2031"},
		{ID: 3, Name: "true red", Year: 2002, Color: "#BF1932", PantoneValue: "19-1664"},
		{ID: 4, Name: "aqua sky", Year: 2003, Color: "#7BC4C4", PantoneValue: "14-4811"},
		{ID: 5, Name: "tigerlily", Year: 2004, Color: "#E2583E", PantoneValue: "17-1456"},
		{ID: 6, Name: "blue turquoise", Year: 2005, Color: "#53B0AE", PantoneValue: "15-5217"},
		{ID: 7, Name: "sand dollar", Year: 2006, Color: "#DECDBE", PantoneValue: "13-1106"},
		{ID: 8, Name: "chili pepper", Year: 2007, Color: "#9B1B30", PantoneValue: "19-1557"},
		{ID: 9, Name: "blue iris", Year: 2008, Color: "#5A5B9F", PantoneValue: "18-3943"},
		{ID: 10, Name: "mimosa", Year: 2009, Color: "#F0C05A", PantoneValue: "14-0848"},
		{ID: 11, Name: "turquoise", Year: 2010, Color: "#45B5AA", PantoneValue: "15-5519"},
		{ID: 12, Name: "honeysuckle", Year: 2011, Color: "#D94F70", PantoneValue: "18-2120"},
	}
}

func defaultSupport() *reqres.Support {
	return &reqres.Support{
		URL:  "https://reqres.in/#support-heading",
		Text: "To keep ReqRes free, contributions towards server costs are appreciated!",
	}
}
