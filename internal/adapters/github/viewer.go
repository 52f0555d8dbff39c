package github

import (
	"context"
	"encoding/json"
	"fmt"

	"ghnotifs/internal/domain"
	"ghnotifs/internal/logging"
)

const orgsQuery = `{
  viewer {
    login
    organizations(first: 100) {
      nodes {
        login
      }
    }
  }
}`

const teamsQuery = `query($orgName: String!, $userLogin: String!) {
  organization(login: $orgName) {
    teams(userLogins: [$userLogin], first: 100) {
      nodes {
        slug
      }
    }
  }
}`

// Viewer resolves the authenticated user's login, numeric id, and
// org-qualified team memberships.
func (c *Client) Viewer(ctx context.Context) (domain.User, error) {
	data, err := c.api(ctx, "user")
	if err != nil {
		return domain.User{}, err
	}

	var user struct {
		Login *string      `json:"login"`
		ID    *json.Number `json:"id"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return domain.User{}, fmt.Errorf("parse user payload: %w", err)
	}
	if user.Login == nil {
		return domain.User{}, fmt.Errorf("%w: login", domain.ErrMissingField)
	}
	if user.ID == nil {
		return domain.User{}, fmt.Errorf("%w: id", domain.ErrMissingField)
	}

	orgs, err := c.organizations(ctx)
	if err != nil {
		return domain.User{}, err
	}

	var teams []string
	for _, org := range orgs {
		slugs, err := c.orgTeams(ctx, org, *user.Login)
		if err != nil {
			return domain.User{}, err
		}
		for _, slug := range slugs {
			teams = append(teams, org+"/"+slug)
		}
	}

	logging.Logger.Debug("Resolved viewer", "login", *user.Login, "orgs", len(orgs), "teams", len(teams))
	return domain.NewUser(user.ID.String(), *user.Login, teams), nil
}

// organizations returns the login of each organization the viewer belongs to.
func (c *Client) organizations(ctx context.Context) ([]string, error) {
	data, err := c.api(ctx, "graphql", "-f", "query="+orgsQuery)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data struct {
			Viewer struct {
				Organizations struct {
					Nodes []struct {
						Login string `json:"login"`
					} `json:"nodes"`
				} `json:"organizations"`
			} `json:"viewer"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse organizations payload: %w", err)
	}

	orgs := make([]string, 0, len(payload.Data.Viewer.Organizations.Nodes))
	for _, node := range payload.Data.Viewer.Organizations.Nodes {
		orgs = append(orgs, node.Login)
	}
	return orgs, nil
}

// orgTeams returns the slugs of the viewer's teams within one organization.
func (c *Client) orgTeams(ctx context.Context, org, login string) ([]string, error) {
	data, err := c.api(ctx,
		"graphql",
		"-f", "orgName="+org,
		"-f", "userLogin="+login,
		"-f", "query="+teamsQuery,
	)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data struct {
			Organization struct {
				Teams struct {
					Nodes []struct {
						Slug string `json:"slug"`
					} `json:"nodes"`
				} `json:"teams"`
			} `json:"organization"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse teams payload: %w", err)
	}

	slugs := make([]string, 0, len(payload.Data.Organization.Teams.Nodes))
	for _, node := range payload.Data.Organization.Teams.Nodes {
		slugs = append(slugs, node.Slug)
	}
	return slugs, nil
}
