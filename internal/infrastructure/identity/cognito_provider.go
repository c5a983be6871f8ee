package identity

import (
	"context"
	"errors"
	"log"
	"strings"

	"pizzamaster/internal/domain/entities"
	"pizzamaster/internal/infrastructure/database"
	"pizzamaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

var ErrMissingCognitoClientID = errors.New("missing COGNITO_CLIENT_ID")

// CognitoProvider verifies operator credentials against an AWS Cognito user
// pool using the USER_PASSWORD_AUTH flow.
//
// Wrong password and unknown user are mapped to the interface sentinels so
// the rest of the app never sees Cognito types.
type CognitoProvider struct {
	client   *cognitoidentityprovider.Client
	clientID string
}

var _ interfaces.IIdentityProvider = (*CognitoProvider)(nil)

func NewCognitoProvider(ctx context.Context, clientID string) (*CognitoProvider, error) {
	if strings.TrimSpace(clientID) == "" {
		log.Printf("[identity][cognito] missing COGNITO_CLIENT_ID")
		return nil, ErrMissingCognitoClientID
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Printf("[identity][cognito] failed creating aws config err=%v", err)
		return nil, err
	}

	log.Printf("[identity][cognito] client initialized")
	return &CognitoProvider{
		client:   cognitoidentityprovider.NewFromConfig(cfg),
		clientID: clientID,
	}, nil
}

func (p *CognitoProvider) SignIn(ctx context.Context, email, password string) (entities.IdentitySession, error) {
	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(p.clientID),
		AuthParameters: map[string]string{
			"USERNAME": email,
			"PASSWORD": password,
		},
	})
	if err != nil {
		var userNotFound *types.UserNotFoundException
		if errors.As(err, &userNotFound) {
			return entities.IdentitySession{}, interfaces.ErrIdentityUserNotFound
		}
		var notAuthorized *types.NotAuthorizedException
		if errors.As(err, &notAuthorized) {
			return entities.IdentitySession{}, interfaces.ErrIdentityInvalidCredentials
		}
		log.Printf("[identity][cognito] initiate-auth failed err=%v", err)
		return entities.IdentitySession{}, err
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		// Challenge flows (MFA, forced password change) are not part of the
		// POS sign-in; treat them as a rejection.
		return entities.IdentitySession{}, interfaces.ErrIdentityInvalidCredentials
	}

	return entities.IdentitySession{
		AccessToken: aws.ToString(out.AuthenticationResult.AccessToken),
		ExpiresIn:   out.AuthenticationResult.ExpiresIn,
	}, nil
}

func (p *CognitoProvider) SignOut(ctx context.Context, accessToken string) error {
	_, err := p.client.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		log.Printf("[identity][cognito] global-sign-out failed err=%v", err)
	}
	return err
}
