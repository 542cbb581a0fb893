package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dieuclat/storefront/internal/entity"
	"github.com/dieuclat/storefront/internal/repository"
	"github.com/dieuclat/storefront/internal/repository/memory"
)

var errDiskFull = errors.New("disk full")

func product(id int, price int64) entity.Product {
	return entity.Product{ID: id, Name: "Gift", Price: entity.NewMoney(price, "INR"), Image: "gift.jpg"}
}

func TestCartStore_AddUpdateScenario(t *testing.T) {
	ctx := context.Background()
	cart, err := OpenCartStore(ctx, memory.NewStore(), "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	p := entity.Product{ID: 1, Name: "Eternal Bloom Box", Price: entity.MustParseMoney("₹2,400")}
	require.NoError(t, cart.AddToCart(ctx, p))
	assert.Equal(t, 1, cart.Count())
	assert.Equal(t, entity.NewMoney(2400, "INR"), cart.Total())

	require.NoError(t, cart.AddToCart(ctx, p))
	assert.Equal(t, 2, cart.Count())
	assert.Equal(t, entity.NewMoney(4800, "INR"), cart.Total())
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 2, cart.Items()[0].Quantity)

	require.NoError(t, cart.UpdateQuantity(ctx, 1, -2))
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Count())
}

func TestCartStore_ReloadsFromStorage(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	cart, err := OpenCartStore(ctx, store, "s1")
	require.NoError(t, err)
	require.NoError(t, cart.AddToCart(ctx, product(1, 100)))
	require.NoError(t, cart.AddToCart(ctx, product(2, 250)))
	require.NoError(t, cart.UpdateQuantity(ctx, 2, 2))

	again, err := OpenCartStore(ctx, store, "s1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items(), again.Items())
	assert.Equal(t, entity.NewMoney(850, "INR"), again.Total())

	other, err := OpenCartStore(ctx, store, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartStore_FailedSaveLeavesCartUnchanged(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cart, err := OpenCartStore(ctx, store, "s1")
	require.NoError(t, err)
	require.NoError(t, cart.AddToCart(ctx, product(1, 100)))

	store.FailSaves(errDiskFull)
	err = cart.AddToCart(ctx, product(2, 200))

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, repository.Namespace("s1", repository.CartKey), perr.Key)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 1, cart.Count())

	require.Error(t, cart.ClearCart(ctx))
	assert.Equal(t, 1, cart.Count())

	store.FailSaves(nil)
	require.NoError(t, cart.AddToCart(ctx, product(2, 200)))
	assert.Equal(t, 2, cart.Count())
}

func TestCartStore_UnreadableDocumentStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	key := repository.Namespace("s1", repository.CartKey)
	require.NoError(t, store.Save(ctx, key, []byte("{not json")))

	cart, err := OpenCartStore(ctx, store, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	require.NoError(t, cart.AddToCart(ctx, product(1, 100)))
	data, err := store.Load(ctx, key)
	require.NoError(t, err)
	var items []entity.CartItem
	require.NoError(t, json.Unmarshal(data, &items))
	assert.Len(t, items, 1)
}

func TestCartStore_LoadsStoredIDShape(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	stored := `[{"id":1,"name":"A","price":"₹2,400","image":"a.jpg","quantity":1},{"id":5,"name":"B","price":"₹1,800","image":"b.jpg","quantity":2}]`
	require.NoError(t, store.Save(ctx, repository.Namespace("s1", repository.CartKey), []byte(stored)))

	cart, err := OpenCartStore(ctx, store, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items(), 2)
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, entity.NewMoney(6000, "INR"), cart.Total())

	require.NoError(t, cart.UpdateQuantity(ctx, 5, -1))
	reloaded, err := OpenCartStore(ctx, store, "s1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items(), reloaded.Items())
	assert.Equal(t, entity.NewMoney(4200, "INR"), reloaded.Total())
}

func TestOrderHistory_LoadsStoredShape(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	stored := `[{"id":"ORD-K3X9QZ0AB","date":"2024-03-01T10:00:00.000Z","status":"Pending",` +
		`"items":[{"id":1,"name":"A","price":"₹2,400","image":"a.jpg","quantity":2}],"total":4800,` +
		`"shippingDetails":{"name":"Sanya"},"expectedDelivery":"2024-03-06T10:00:00.000Z"}]`
	require.NoError(t, store.Save(ctx, repository.Namespace("s1", repository.OrdersKey), []byte(stored)))

	h, err := OpenOrderHistory(ctx, store, "s1")
	require.NoError(t, err)
	o, err := h.FindOrder("ORD-K3X9QZ0AB")
	require.NoError(t, err)
	assert.Equal(t, entity.NewMoney(4800, "INR"), o.TotalAmount)
	assert.False(t, o.CreatedAt.IsZero())
	assert.False(t, o.ExpectedDeliveryAt.IsZero())
	assert.Equal(t, 1, o.Items[0].ProductID)
}

func TestCartStore_AddQuantity(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cart, err := OpenCartStore(ctx, store, "s1")
	require.NoError(t, err)

	require.NoError(t, cart.AddQuantity(ctx, product(1, 100), 3))
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, 1, store.Saves())

	assert.ErrorIs(t, cart.AddQuantity(ctx, product(1, 100), 0), ErrInvalidQuantity)
	assert.Equal(t, 3, cart.Count())
}

func TestWishlistStore_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	w, err := OpenWishlistStore(ctx, store, "s1")
	require.NoError(t, err)

	require.NoError(t, w.AddToWishlist(ctx, product(5, 900)))
	saves := store.Saves()
	require.NoError(t, w.AddToWishlist(ctx, product(5, 900)))

	assert.Equal(t, 1, w.Count())
	assert.True(t, w.IsInWishlist(5))
	assert.Equal(t, saves, store.Saves())

	require.NoError(t, w.RemoveFromWishlist(ctx, 5))
	assert.False(t, w.IsInWishlist(5))
	require.NoError(t, w.RemoveFromWishlist(ctx, 5))
}

func TestWishlistStore_FailedSaveLeavesWishlistUnchanged(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	w, err := OpenWishlistStore(ctx, store, "s1")
	require.NoError(t, err)
	require.NoError(t, w.AddToWishlist(ctx, product(1, 100)))

	store.FailSaves(errDiskFull)
	var perr *PersistenceError
	require.ErrorAs(t, w.AddToWishlist(ctx, product(2, 100)), &perr)
	require.ErrorAs(t, w.ClearWishlist(ctx), &perr)
	assert.Equal(t, 1, w.Count())
	assert.False(t, w.IsInWishlist(2))

	reloaded, err := OpenWishlistStore(ctx, store, "s1")
	require.NoError(t, err)
	assert.Equal(t, w.Items(), reloaded.Items())
}

func TestOrderHistory_FindOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	h, err := OpenOrderHistory(ctx, store, "s1")
	require.NoError(t, err)

	_, err = h.FindOrder("ORD-MISSING01")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	first := entity.Order{ID: "ORD-000000001", Status: entity.OrderStatusPending}
	second := entity.Order{ID: "ORD-000000002", Status: entity.OrderStatusPending}
	require.NoError(t, h.Append(ctx, first))
	require.NoError(t, h.Append(ctx, second))
	require.Error(t, h.Append(ctx, first))

	got, err := h.FindOrder("ORD-000000001")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	list := h.List()
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-000000002", list[0].ID)

	reloaded, err := OpenOrderHistory(ctx, store, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())
	assert.True(t, reloaded.Has("ORD-000000002"))
}

func TestOrderHistory_FailedAppendIsNotVisible(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	h, err := OpenOrderHistory(ctx, store, "s1")
	require.NoError(t, err)

	store.FailSaves(errDiskFull)
	var perr *PersistenceError
	require.ErrorAs(t, h.Append(ctx, entity.Order{ID: "ORD-000000001"}), &perr)
	assert.Equal(t, 0, h.Len())
	_, err = h.FindOrder("ORD-000000001")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestNotifier_Handle(t *testing.T) {
	n := NewOrderNotifier(nil)
	o := entity.NewOrder("ORD-ABC", []entity.CartItem{{ProductID: 1, Price: entity.NewMoney(10, "INR"), Quantity: 1}}, entity.ShippingDetails{Email: "a@b.com"}, fixedNow(), DefaultDeliveryLeadTime)
	payload, err := json.Marshal(entity.NewOrderPlaced("s1", o))
	require.NoError(t, err)

	assert.NoError(t, n.Handle(context.Background(), payload))
	assert.Error(t, n.Handle(context.Background(), []byte("nope")))
	assert.Error(t, n.Handle(context.Background(), []byte(`{}`)))
}
