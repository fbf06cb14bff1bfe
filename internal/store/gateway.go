package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"paypage_ai_server/internal/types"
)

var (
	ErrQuotaExceeded     = errors.New("payment page limit reached")
	ErrPersistenceFailed = errors.New("payment page storage failed")
	ErrPageNotFound      = errors.New("payment page not found")

	// ErrLoadFailed and ErrDeleteFailed are ErrPersistenceFailed for one operation.
	ErrLoadFailed   = fmt.Errorf("%w: load", ErrPersistenceFailed)
	ErrDeleteFailed = fmt.Errorf("%w: delete", ErrPersistenceFailed)
)

const (
	QuotaMessage    = "You've reached the maximum of 3 payment pages. Delete an existing page to create a new one."
	GenericMessage  = "Failed to save payment page. Please try again."
	NotFoundMessage = "Payment page not found."
	LoadMessage     = "Failed to load payment pages."
	DeleteMessage   = "Failed to delete payment page."
)

// Gateway is the only place store errors are classified. Callers switch on
// the sentinel errors, never on message text.
type Gateway struct {
	repo *Repository
	now  func() time.Time
}

func NewGateway(repo *Repository) *Gateway {
	return &Gateway{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Summary is the dashboard header: how many pages exist and whether another fits.
type Summary struct {
	Pages         []types.PersistedPage `json:"pages"`
	Count         int                   `json:"count"`
	Limit         int                   `json:"limit"`
	CanCreateMore bool                  `json:"canCreateMore"`
}

// Save denormalizes the business data and the displayed page into one row.
func (g *Gateway) Save(ctx context.Context, userID string, data types.BusinessData, page types.GeneratedPage) (*types.PersistedPage, error) {
	row := &types.PersistedPage{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        page.Title,
		CompanyName:  data.CompanyName,
		BusinessName: data.BusinessName,
		Description:  page.Description,
		Price:        data.Price,
		Currency:     data.Currency,
		Availability: data.Availability,
		Industry:     data.Industry,
		Headline:     page.Headline,
		Features:     page.Features,
		CallToAction: page.CallToAction,
		TrustSignals: page.TrustSignals,
		FAQ:          page.FAQ,
		Colors:       page.Colors,
		Template:     page.Template,
		CreatedAt:    g.now(),
	}

	if err := g.repo.Insert(ctx, row); err != nil {
		err = classify(err, ErrPersistenceFailed)
		log.Printf("ERROR: Failed to save payment page for user %s: %v", userID, err)
		return nil, err
	}
	log.Printf("Saved payment page %s for user %s", row.ID, userID)
	return row, nil
}

func (g *Gateway) List(ctx context.Context, userID string) (*Summary, error) {
	pages, err := g.repo.ListByUser(ctx, userID)
	if err != nil {
		err = classify(err, ErrLoadFailed)
		log.Printf("ERROR: Failed to list payment pages for user %s: %v", userID, err)
		return nil, err
	}
	return &Summary{
		Pages:         pages,
		Count:         len(pages),
		Limit:         MaxPagesPerUser,
		CanCreateMore: len(pages) < MaxPagesPerUser,
	}, nil
}

func (g *Gateway) Delete(ctx context.Context, userID, id string) error {
	ok, err := g.repo.Delete(ctx, userID, id)
	if err != nil {
		err = classify(err, ErrDeleteFailed)
		log.Printf("ERROR: Failed to delete payment page %s for user %s: %v", id, userID, err)
		return err
	}
	if !ok {
		return ErrPageNotFound
	}
	log.Printf("Deleted payment page %s for user %s", id, userID)
	return nil
}

// classify tags a driver error; anything but the quota trigger becomes failed.
func classify(err, failed error) error {
	if strings.Contains(err.Error(), quotaMessage) {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %v", failed, err)
}

// UserMessage maps a gateway error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		return QuotaMessage
	case errors.Is(err, ErrPageNotFound):
		return NotFoundMessage
	case errors.Is(err, ErrLoadFailed):
		return LoadMessage
	case errors.Is(err, ErrDeleteFailed):
		return DeleteMessage
	default:
		return GenericMessage
	}
}
