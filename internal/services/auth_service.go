package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/authorizerdev/authorizer-go"
	"github.com/vojtechokenka/nokturo/internal/config"
	"github.com/vojtechokenka/nokturo/internal/models"
	"github.com/vojtechokenka/nokturo/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	authClient *authorizer.AuthorizerClient
	authOnce   sync.Once
)

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	return authClient != nil
}

// InitAuthorizer initializes the Authorizer client (singleton pattern)
func InitAuthorizer(cfg *config.Config, requestProtocol, requestHost string) error {
	var initErr error

	authOnce.Do(func() {
		// Ping the Authorizer service first
		if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
			initErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
		log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
			cfg.AuthzURL, cfg.AuthzClientID, redirectURL)

		var err error
		authClient, err = authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			initErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
	})

	return initErr
}

// ValidateSession validates a session cookie for the given roles
func ValidateSession(cookie string, roles []string) (map[string]interface{}, error) {
	if authClient == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	// Convert roles to []*string
	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	// Validate session using the authorizer-go SDK
	res, err := authClient.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})

	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	// Check if session is valid
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	// Return user data
	return map[string]interface{}{
		"is_valid": res.IsValid,
		"user":     res.User,
	}, nil
}

// SyncProfile mirrors the authorizer user into the local profiles table so
// comments can join on author locally. Called after every validated
// session; an existing row is refreshed, a missing one created.
func SyncProfile(db *gorm.DB, user *authorizer.User, role string) (*models.Profile, error) {
	if user == nil || user.ID == "" {
		return nil, fmt.Errorf("no user in session")
	}

	profile := models.Profile{
		ProfileID: user.ID,
		Email:     user.Email,
		Role:      role,
	}
	if user.GivenName != nil {
		profile.FirstName = *user.GivenName
	}
	if user.FamilyName != nil {
		profile.LastName = *user.FamilyName
	}
	if user.Picture != nil {
		profile.AvatarURL = *user.Picture
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "profile_id"}},
		DoUpdates: clause.AssignmentColumns(
			[]string{"email", "first_name", "last_name", "role", "avatar_url"},
		),
	}).Create(&profile).Error
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
