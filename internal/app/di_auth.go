package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/sharelink/internal/auth/http"
	authRepository "github.com/allisson/sharelink/internal/auth/repository"
	authService "github.com/allisson/sharelink/internal/auth/service"
	authUseCase "github.com/allisson/sharelink/internal/auth/usecase"
	"github.com/allisson/sharelink/internal/database"
)

type authComponents struct {
	secretService      authService.SecretService
	tokenService       authService.TokenService
	operatorRepository authUseCase.OperatorRepository
	tokenRepository    authUseCase.TokenRepository
	operatorUseCase    authUseCase.OperatorUseCase
	tokenUseCase       authUseCase.TokenUseCase
	tokenHandler       *authHTTP.TokenHandler

	secretServiceInit      sync.Once
	tokenServiceInit       sync.Once
	operatorRepositoryInit sync.Once
	tokenRepositoryInit    sync.Once
	operatorUseCaseInit    sync.Once
	tokenUseCaseInit       sync.Once
	tokenHandlerInit       sync.Once
}

// SecretService returns the Argon2id operator secret service.
func (c *Container) SecretService() authService.SecretService {
	c.secretServiceInit.Do(func() {
		c.secretService = authService.NewSecretService()
	})
	return c.secretService
}

// TokenService returns the bearer token service.
func (c *Container) TokenService() authService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = authService.NewTokenService()
	})
	return c.tokenService
}

// OperatorRepository returns the operator repository for the configured driver.
func (c *Container) OperatorRepository() (authUseCase.OperatorRepository, error) {
	c.operatorRepositoryInit.Do(func() {
		var err error
		c.operatorRepository, err = c.initOperatorRepository()
		c.setInitError("operatorRepository", err)
	})
	if err := c.initError("operatorRepository"); err != nil {
		return nil, err
	}
	return c.operatorRepository, nil
}

// TokenRepository returns the token repository for the configured driver.
func (c *Container) TokenRepository() (authUseCase.TokenRepository, error) {
	c.tokenRepositoryInit.Do(func() {
		var err error
		c.tokenRepository, err = c.initTokenRepository()
		c.setInitError("tokenRepository", err)
	})
	if err := c.initError("tokenRepository"); err != nil {
		return nil, err
	}
	return c.tokenRepository, nil
}

// OperatorUseCase returns the operator use case.
func (c *Container) OperatorUseCase() (authUseCase.OperatorUseCase, error) {
	c.operatorUseCaseInit.Do(func() {
		var err error
		c.operatorUseCase, err = c.initOperatorUseCase()
		c.setInitError("operatorUseCase", err)
	})
	if err := c.initError("operatorUseCase"); err != nil {
		return nil, err
	}
	return c.operatorUseCase, nil
}

// TokenUseCase returns the token use case.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	c.tokenUseCaseInit.Do(func() {
		var err error
		c.tokenUseCase, err = c.initTokenUseCase()
		c.setInitError("tokenUseCase", err)
	})
	if err := c.initError("tokenUseCase"); err != nil {
		return nil, err
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the HTTP handler for token issuance.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	c.tokenHandlerInit.Do(func() {
		var err error
		c.tokenHandler, err = c.initTokenHandler()
		c.setInitError("tokenHandler", err)
	})
	if err := c.initError("tokenHandler"); err != nil {
		return nil, err
	}
	return c.tokenHandler, nil
}

func (c *Container) initOperatorRepository() (authUseCase.OperatorRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for operator repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return authRepository.NewPostgreSQLOperatorRepository(db), nil
	case database.DriverMySQL:
		return authRepository.NewMySQLOperatorRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initTokenRepository() (authUseCase.TokenRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return authRepository.NewPostgreSQLTokenRepository(db), nil
	case database.DriverMySQL:
		return authRepository.NewMySQLTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initOperatorUseCase() (authUseCase.OperatorUseCase, error) {
	operatorRepository, err := c.OperatorRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get operator repository for operator use case: %w", err)
	}

	baseUseCase := authUseCase.NewOperatorUseCase(operatorRepository, c.SecretService())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for operator use case: %w", err)
		}
		return authUseCase.NewOperatorUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initTokenUseCase() (authUseCase.TokenUseCase, error) {
	operatorRepository, err := c.OperatorRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get operator repository for token use case: %w", err)
	}

	tokenRepository, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token use case: %w", err)
	}

	baseUseCase := authUseCase.NewTokenUseCase(
		operatorRepository,
		tokenRepository,
		c.SecretService(),
		c.TokenService(),
		c.config.AuthTokenExpiration,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		return authUseCase.NewTokenUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initTokenHandler() (*authHTTP.TokenHandler, error) {
	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}
	return authHTTP.NewTokenHandler(tokenUseCase, c.Logger()), nil
}
