package invoice

import (
	"context"
	"testing"
	"time"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFixture struct {
	store *fileStore
	now   time.Time
}

func newStoreFixture(t *testing.T, ttl time.Duration) *storeFixture {
	t.Helper()

	fixture := &storeFixture{now: time.Now()}
	store, err := newFileStore(t.TempDir(), ttl, func() time.Time { return fixture.now })
	require.NoError(t, err)
	fixture.store = store

	return fixture
}

func sampleInvoice(now time.Time) *entity.PendingInvoice {
	clientID := uuid.New()

	return &entity.PendingInvoice{
		Items: []entity.PurchaseItem{
			{ProductID: uuid.New(), Name: "Taza", UnitPrice: 10.50, Quantity: 2, Subtotal: 21.00},
			{ProductID: uuid.New(), Name: "Plato", UnitPrice: 4.00, Quantity: 1, Subtotal: 4.00},
		},
		Total:     25.00,
		ClientID:  &clientID,
		CreatedAt: now.Unix(),
	}
}

func TestFileStore_SaveAndClaim(t *testing.T) {
	fixture := newStoreFixture(t, 30*time.Minute)
	ctx := context.Background()

	saved := sampleInvoice(fixture.now)
	token, err := fixture.store.Save(ctx, saved)
	require.NoError(t, err)
	assert.Len(t, token, 32)

	claimed, err := fixture.store.Claim(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, saved.Total, claimed.Total)
	assert.Equal(t, saved.ClientID, claimed.ClientID)
	require.Len(t, claimed.Items, 2)
	assert.Equal(t, "Taza", claimed.Items[0].Name)
	assert.Equal(t, 21.00, claimed.Items[0].Subtotal)
}

func TestFileStore_ClaimIsExclusive(t *testing.T) {
	fixture := newStoreFixture(t, 30*time.Minute)
	ctx := context.Background()

	token, err := fixture.store.Save(ctx, sampleInvoice(fixture.now))
	require.NoError(t, err)

	_, err = fixture.store.Claim(ctx, token)
	require.NoError(t, err)

	// A second claim on the same token must lose.
	_, err = fixture.store.Claim(ctx, token)
	assert.ErrorIs(t, err, service.ErrPendingInvoiceNotFound)
}

func TestFileStore_ClaimUnknownToken(t *testing.T) {
	fixture := newStoreFixture(t, 30*time.Minute)

	_, err := fixture.store.Claim(context.Background(), "00000000000000000000000000000000")
	assert.ErrorIs(t, err, service.ErrPendingInvoiceNotFound)
}

func TestFileStore_ClaimRejectsMalformedToken(t *testing.T) {
	fixture := newStoreFixture(t, 30*time.Minute)

	for _, token := range []string{"", "short", "../../etc/passwd", "ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ"} {
		_, err := fixture.store.Claim(context.Background(), token)
		assert.ErrorIs(t, err, service.ErrPendingInvoiceNotFound, "token %q", token)
	}
}

func TestFileStore_ClaimExpiredDiscards(t *testing.T) {
	fixture := newStoreFixture(t, 30*time.Minute)
	ctx := context.Background()

	token, err := fixture.store.Save(ctx, sampleInvoice(fixture.now))
	require.NoError(t, err)

	fixture.now = fixture.now.Add(31 * time.Minute)

	_, err = fixture.store.Claim(ctx, token)
	assert.ErrorIs(t, err, service.ErrPendingInvoiceExpired)

	// The expired invoice is gone, not claimable again.
	_, err = fixture.store.Claim(ctx, token)
	assert.ErrorIs(t, err, service.ErrPendingInvoiceNotFound)
}

func TestFileStore_ClaimJustInsideTTL(t *testing.T) {
	fixture := newStoreFixture(t, 30*time.Minute)
	ctx := context.Background()

	token, err := fixture.store.Save(ctx, sampleInvoice(fixture.now))
	require.NoError(t, err)

	fixture.now = fixture.now.Add(29 * time.Minute)

	_, err = fixture.store.Claim(ctx, token)
	assert.NoError(t, err)
}

func TestFileStore_ReleaseMakesTokenClaimableAgain(t *testing.T) {
	fixture := newStoreFixture(t, 30*time.Minute)
	ctx := context.Background()

	token, err := fixture.store.Save(ctx, sampleInvoice(fixture.now))
	require.NoError(t, err)

	_, err = fixture.store.Claim(ctx, token)
	require.NoError(t, err)

	require.NoError(t, fixture.store.Release(ctx, token))

	_, err = fixture.store.Claim(ctx, token)
	assert.NoError(t, err)
}

func TestFileStore_DiscardIsIdempotent(t *testing.T) {
	fixture := newStoreFixture(t, 30*time.Minute)
	ctx := context.Background()

	token, err := fixture.store.Save(ctx, sampleInvoice(fixture.now))
	require.NoError(t, err)

	_, err = fixture.store.Claim(ctx, token)
	require.NoError(t, err)

	require.NoError(t, fixture.store.Discard(ctx, token))
	require.NoError(t, fixture.store.Discard(ctx, token))

	_, err = fixture.store.Claim(ctx, token)
	assert.ErrorIs(t, err, service.ErrPendingInvoiceNotFound)
}
