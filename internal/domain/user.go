package domain

// User is the viewer identity, resolved once per run from the gh session.
type User struct {
	ID    string
	Login string
	teams map[string]bool
}

// NewUser creates a User. Team slugs are org-qualified ("org/slug").
func NewUser(id, login string, teams []string) User {
	set := make(map[string]bool, len(teams))
	for _, team := range teams {
		set[team] = true
	}
	return User{ID: id, Login: login, teams: set}
}

// WithTeams returns a copy of the user with extra team slugs added.
// Used to merge configured team memberships into the fetched identity.
func (u User) WithTeams(teams []string) User {
	if len(teams) == 0 {
		return u
	}
	merged := make(map[string]bool, len(u.teams)+len(teams))
	for team := range u.teams {
		merged[team] = true
	}
	for _, team := range teams {
		merged[team] = true
	}
	return User{ID: u.ID, Login: u.Login, teams: merged}
}

// InTeam reports whether the user belongs to the org-qualified team slug.
func (u User) InTeam(slug string) bool {
	return u.teams[slug]
}
