package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

// tokenResponse is the OIDC token endpoint payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// iamErrorBody covers the error shapes the identity service returns.
type iamErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorMessage     string `json:"errorMessage"`
}

func (g *AccountGW) tokenEndpoint() string {
	return fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", g.iam.BaseURL, g.cfg.IAM.Realm)
}

func (g *AccountGW) adminEndpoint(path string) string {
	return fmt.Sprintf("%s/admin/realms/%s%s", g.iam.BaseURL, g.cfg.IAM.Realm, path)
}

// iamError reads a non-2xx response into the single IAM error kind,
// forwarding the upstream status code.
func iamError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var parsed iamErrorBody
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.ErrorMessage != "":
			message = parsed.ErrorMessage
		case parsed.ErrorDescription != "":
			message = parsed.ErrorDescription
		case parsed.Error != "":
			message = parsed.Error
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return errs.IAM(resp.StatusCode, message)
}

func (g *AccountGW) grant(ctx context.Context, form url.Values) (*models.TokenPair, error) {
	form.Set("client_id", g.cfg.IAM.ClientID)
	if g.cfg.IAM.ClientSecret != "" {
		form.Set("client_secret", g.cfg.IAM.ClientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.tokenEndpoint(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Operation("failed to build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.iam.HTTPClient.Do(req)
	if err != nil {
		return nil, errs.Operation("identity service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, iamError(resp)
	}

	var tokens tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, errs.Operation("failed to decode token response", err)
	}
	return &models.TokenPair{Access: tokens.AccessToken, Refresh: tokens.RefreshToken}, nil
}

// GetToken grants an access/refresh pair for the given credentials.
func (g *AccountGW) GetToken(ctx context.Context, username, password string) (*models.TokenPair, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)
	return g.grant(ctx, form)
}

// RefreshToken exchanges a refresh token for a new pair.
func (g *AccountGW) RefreshToken(ctx context.Context, refresh string) (*models.TokenPair, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refresh)
	return g.grant(ctx, form)
}

// adminToken obtains an admin bearer for the duration of one operation.
// Conservative: re-fetched per call, never refreshed.
func (g *AccountGW) adminToken(ctx context.Context) (string, error) {
	tokens, err := g.GetToken(ctx, g.cfg.IAM.AdminUsername, g.cfg.IAM.AdminPassword)
	if err != nil {
		return "", err
	}
	return tokens.Access, nil
}

func (g *AccountGW) adminRequest(ctx context.Context, method, path string, payload interface{}) (*http.Response, error) {
	token, err := g.adminToken(ctx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Operation("failed to marshal request", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.adminEndpoint(path), body)
	if err != nil {
		return nil, errs.Operation("failed to build admin request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.iam.HTTPClient.Do(req)
	if err != nil {
		return nil, errs.Operation("identity service unreachable", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, iamError(resp)
	}
	return resp, nil
}

// credential is the payload for setting a principal's password.
type credential struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Temporary bool   `json:"temporary"`
}

// CreateUser creates a principal, assigns it to the requested group and
// grants an initial token pair. The group must already exist in the realm.
func (g *AccountGW) CreateUser(ctx context.Context, req *models.CreateIAMUserRequest) (*models.CreatedIAMUser, error) {
	group, err := g.findGroup(ctx, req.Group)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"username":  req.Username,
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"enabled":   true,
		"credentials": []credential{{
			Type:      "password",
			Value:     req.Password,
			Temporary: false,
		}},
	}
	if req.Email != "" {
		payload["email"] = req.Email
	}

	resp, err := g.adminRequest(ctx, http.MethodPost, "/users", payload)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	// The id of the created principal is the last segment of Location.
	location := resp.Header.Get("Location")
	if location == "" {
		return nil, errs.Operation("identity service returned no user location", nil)
	}
	parts := strings.Split(location, "/")
	userID := parts[len(parts)-1]

	if err := g.assignGroupID(ctx, userID, group.ID); err != nil {
		return nil, err
	}

	tokens, err := g.GetToken(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return &models.CreatedIAMUser{ID: userID, Tokens: *tokens}, nil
}

// ResetPassword sets a new permanent password for the principal.
func (g *AccountGW) ResetPassword(ctx context.Context, userID, newPassword string) error {
	payload := credential{Type: "password", Value: newPassword, Temporary: false}
	resp, err := g.adminRequest(ctx, http.MethodPut, "/users/"+userID+"/reset-password", payload)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// UpdateUser patches the mutable attributes of the principal.
func (g *AccountGW) UpdateUser(ctx context.Context, userID string, update *models.IAMUserUpdate) error {
	payload := map[string]interface{}{}
	if update.FirstName != nil {
		payload["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		payload["lastName"] = *update.LastName
	}
	if update.Email != nil {
		payload["email"] = *update.Email
	}
	if update.Enabled != nil {
		payload["enabled"] = *update.Enabled
	}

	resp, err := g.adminRequest(ctx, http.MethodPut, "/users/"+userID, payload)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// DeleteUser removes the principal from the realm.
func (g *AccountGW) DeleteUser(ctx context.Context, userID string) error {
	resp, err := g.adminRequest(ctx, http.MethodDelete, "/users/"+userID, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// GetUser looks a principal up by its exact username.
func (g *AccountGW) GetUser(ctx context.Context, username string) (*models.IAMUser, error) {
	resp, err := g.adminRequest(ctx, http.MethodGet,
		"/users?exact=true&username="+url.QueryEscape(username), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var users []models.IAMUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, errs.Operation("failed to decode user response", err)
	}
	if len(users) == 0 {
		return nil, errs.NotFound("user not found in identity service")
	}
	return &users[0], nil
}

// ListGroups returns the realm groups.
func (g *AccountGW) ListGroups(ctx context.Context) ([]models.IAMGroup, error) {
	resp, err := g.adminRequest(ctx, http.MethodGet, "/groups", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var groups []models.IAMGroup
	if err := json.NewDecoder(resp.Body).Decode(&groups); err != nil {
		return nil, errs.Operation("failed to decode groups response", err)
	}
	return groups, nil
}

// AssignGroup adds the principal to the named group.
func (g *AccountGW) AssignGroup(ctx context.Context, userID, group string) error {
	found, err := g.findGroup(ctx, group)
	if err != nil {
		return err
	}
	return g.assignGroupID(ctx, userID, found.ID)
}

func (g *AccountGW) findGroup(ctx context.Context, name string) (*models.IAMGroup, error) {
	groups, err := g.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].Name == name {
			return &groups[i], nil
		}
	}
	return nil, errs.BadRequest(fmt.Sprintf("group %q does not exist in the identity service", name))
}

func (g *AccountGW) assignGroupID(ctx context.Context, userID, groupID string) error {
	resp, err := g.adminRequest(ctx, http.MethodPut, "/users/"+userID+"/groups/"+groupID, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
