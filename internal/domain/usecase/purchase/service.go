package purchase

import (
	"strings"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/external"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/usecase"
)

// Config holds the URLs the hosted checkout redirects back to
type Config struct {
	AppURL string
}

// Service sells credit packages and one-off HD unlocks through the payment gateway,
// and applies verified payment events to the ledger.
type Service struct {
	ledger      usecase.LedgerUseCase
	gateway     external.CheckoutGateway
	generations persistence.GenerationRepository
	logger      coreport.Logger
	config      Config
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	ledger usecase.LedgerUseCase,
	gateway external.CheckoutGateway,
	generations persistence.GenerationRepository,
	logger coreport.Logger,
	config Config,
) *Service {
	config.AppURL = strings.TrimRight(config.AppURL, "/")
	return &Service{
		ledger:      ledger,
		gateway:     gateway,
		generations: generations,
		logger:      logger,
		config:      config,
	}
}

var _ usecase.PurchaseUseCase = (*Service)(nil)

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.ErrInvalidUserID
	}
	return nil
}
