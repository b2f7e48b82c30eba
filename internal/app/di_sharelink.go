package app

import (
	"context"
	"fmt"
	"sync"

	customerRepository "github.com/allisson/sharelink/internal/customer/repository"
	"github.com/allisson/sharelink/internal/database"
	shareLinkHTTP "github.com/allisson/sharelink/internal/sharelink/http"
	shareLinkRepository "github.com/allisson/sharelink/internal/sharelink/repository"
	shareLinkService "github.com/allisson/sharelink/internal/sharelink/service"
	shareLinkUseCase "github.com/allisson/sharelink/internal/sharelink/usecase"
	"github.com/allisson/sharelink/internal/storage"
)

type shareLinkComponents struct {
	blobStorage      *storage.BlobStorage
	linkRepository   shareLinkUseCase.LinkRepository
	customerRegistry shareLinkUseCase.CustomerRegistry
	ttlPolicy        shareLinkService.TTLPolicy
	shareLinkUseCase shareLinkUseCase.ShareLinkUseCase
	shareLinkHandler *shareLinkHTTP.ShareLinkHandler
	recipientHandler *shareLinkHTTP.RecipientHandler

	blobStorageInit      sync.Once
	linkRepositoryInit   sync.Once
	customerRegistryInit sync.Once
	ttlPolicyInit        sync.Once
	shareLinkUseCaseInit sync.Once
	shareLinkHandlerInit sync.Once
	recipientHandlerInit sync.Once
}

// BlobStorage returns the bucket used to sign document download URLs.
func (c *Container) BlobStorage() (*storage.BlobStorage, error) {
	c.blobStorageInit.Do(func() {
		var err error
		c.blobStorage, err = storage.OpenBlobStorage(
			context.Background(),
			c.config.BlobBucketURL,
			c.config.BlobSignConcurrency,
		)
		c.setInitError("blobStorage", err)
	})
	if err := c.initError("blobStorage"); err != nil {
		return nil, err
	}
	return c.blobStorage, nil
}

// LinkRepository returns the share link repository for the configured driver.
func (c *Container) LinkRepository() (shareLinkUseCase.LinkRepository, error) {
	c.linkRepositoryInit.Do(func() {
		var err error
		c.linkRepository, err = c.initLinkRepository()
		c.setInitError("linkRepository", err)
	})
	if err := c.initError("linkRepository"); err != nil {
		return nil, err
	}
	return c.linkRepository, nil
}

// CustomerRegistry returns the read-only customer registry for the configured driver.
func (c *Container) CustomerRegistry() (shareLinkUseCase.CustomerRegistry, error) {
	c.customerRegistryInit.Do(func() {
		var err error
		c.customerRegistry, err = c.initCustomerRegistry()
		c.setInitError("customerRegistry", err)
	})
	if err := c.initError("customerRegistry"); err != nil {
		return nil, err
	}
	return c.customerRegistry, nil
}

// TTLPolicy returns the signed URL lifetime policy.
func (c *Container) TTLPolicy() (shareLinkService.TTLPolicy, error) {
	c.ttlPolicyInit.Do(func() {
		mode, err := shareLinkService.ParseTTLPolicyMode(c.config.SignedURLTTLPolicy)
		if err != nil {
			c.setInitError("ttlPolicy", err)
			return
		}
		c.ttlPolicy = shareLinkService.NewTTLPolicy(mode, c.config.SignedURLMinTTL)
	})
	if err := c.initError("ttlPolicy"); err != nil {
		return nil, err
	}
	return c.ttlPolicy, nil
}

// ShareLinkUseCase returns the share link use case.
func (c *Container) ShareLinkUseCase() (shareLinkUseCase.ShareLinkUseCase, error) {
	c.shareLinkUseCaseInit.Do(func() {
		var err error
		c.shareLinkUseCase, err = c.initShareLinkUseCase()
		c.setInitError("shareLinkUseCase", err)
	})
	if err := c.initError("shareLinkUseCase"); err != nil {
		return nil, err
	}
	return c.shareLinkUseCase, nil
}

// ShareLinkHandler returns the HTTP handler for operator share link endpoints.
func (c *Container) ShareLinkHandler() (*shareLinkHTTP.ShareLinkHandler, error) {
	c.shareLinkHandlerInit.Do(func() {
		useCase, err := c.ShareLinkUseCase()
		if err != nil {
			c.setInitError("shareLinkHandler", fmt.Errorf("failed to get share link use case for share link handler: %w", err))
			return
		}
		c.shareLinkHandler = shareLinkHTTP.NewShareLinkHandler(useCase, c.Logger())
	})
	if err := c.initError("shareLinkHandler"); err != nil {
		return nil, err
	}
	return c.shareLinkHandler, nil
}

// RecipientHandler returns the HTTP handler for public recipient endpoints.
func (c *Container) RecipientHandler() (*shareLinkHTTP.RecipientHandler, error) {
	c.recipientHandlerInit.Do(func() {
		useCase, err := c.ShareLinkUseCase()
		if err != nil {
			c.setInitError("recipientHandler", fmt.Errorf("failed to get share link use case for recipient handler: %w", err))
			return
		}
		c.recipientHandler = shareLinkHTTP.NewRecipientHandler(useCase, c.Logger())
	})
	if err := c.initError("recipientHandler"); err != nil {
		return nil, err
	}
	return c.recipientHandler, nil
}

func (c *Container) initLinkRepository() (shareLinkUseCase.LinkRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for share link repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return shareLinkRepository.NewPostgreSQLShareLinkRepository(db), nil
	case database.DriverMySQL:
		return shareLinkRepository.NewMySQLShareLinkRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initCustomerRegistry() (shareLinkUseCase.CustomerRegistry, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for customer registry: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return customerRepository.NewPostgreSQLCustomerRepository(db), nil
	case database.DriverMySQL:
		return customerRepository.NewMySQLCustomerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initShareLinkUseCase() (shareLinkUseCase.ShareLinkUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for share link use case: %w", err)
	}

	linkRepository, err := c.LinkRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get share link repository for share link use case: %w", err)
	}

	customerRegistry, err := c.CustomerRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer registry for share link use case: %w", err)
	}

	blobStorage, err := c.BlobStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to get blob storage for share link use case: %w", err)
	}

	ttlPolicy, err := c.TTLPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to get ttl policy for share link use case: %w", err)
	}

	baseUseCase := shareLinkUseCase.NewShareLinkUseCase(
		txManager,
		linkRepository,
		customerRegistry,
		blobStorage,
		shareLinkService.NewIDGenerator(),
		shareLinkService.NewFieldProjector(),
		ttlPolicy,
		c.config.ShareLinkMaxExpiresIn,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for share link use case: %w", err)
		}
		return shareLinkUseCase.NewShareLinkUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
