// ABOUTME: Profile operations against GET/PATCH /profile/
// ABOUTME: Fetch the authenticated account and apply partial updates

package api

import (
	"context"

	"github.com/doctalk/doctalk-cli/models"
)

// GetProfile fetches the authenticated user's account and health profile.
// A 401 here means the attached credential is invalid or expired.
func (c *Client) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doJSON(ctx, "GET", "/profile/", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update and returns the updated account.
// Only the keys present in patch are sent.
func (c *Client) UpdateProfile(ctx context.Context, patch map[string]any) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doJSON(ctx, "PATCH", "/profile/", patch, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
