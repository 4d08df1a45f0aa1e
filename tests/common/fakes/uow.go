//go:build unit

// Package fakes provides an in-memory unit of work for command tests. It
// mimics the transactional contract of the postgres implementation: state
// mutated inside Within is committed only when the callback returns nil.
package fakes

import (
	"context"
	"time"

	"gocery/internal/domain/order"
	"gocery/internal/domain/product"
	"gocery/internal/domain/review"
	"gocery/internal/domain/user"
	"gocery/internal/infra"
	"gocery/internal/infra/clientstate"
	"gocery/internal/infra/db"
	"gocery/internal/usecase/shared"

	"github.com/google/uuid"
)

type Notification struct {
	UserID  uuid.UUID
	Topic   string
	Message string
	Payload []byte
}

// State is the world the fake operates on. Tests seed it directly and
// inspect it after commands run.
type State struct {
	Products     map[uuid.UUID]shared.ProductSnapshot
	Coupons      map[string]shared.CouponSnapshot
	Users        map[string]shared.UserCredential
	Orders       []*order.Order
	OrderStatus  map[uuid.UUID]order.Status
	ClientStates map[string][]byte
	Idempotency  map[string]shared.IdempotencyRecord
	Notifs       []Notification
	Reviews      map[uuid.UUID]shared.ReviewSnapshot

	// NotifyErr, when set, is returned by every notification write.
	NotifyErr error
}

func NewState() *State {
	return &State{
		Products:     map[uuid.UUID]shared.ProductSnapshot{},
		Coupons:      map[string]shared.CouponSnapshot{},
		Users:        map[string]shared.UserCredential{},
		OrderStatus:  map[uuid.UUID]order.Status{},
		ClientStates: map[string][]byte{},
		Idempotency:  map[string]shared.IdempotencyRecord{},
		Reviews:      map[uuid.UUID]shared.ReviewSnapshot{},
	}
}

func stateKey(ownerID string, scope clientstate.Scope) string {
	return ownerID + "/" + string(scope)
}

// SeedClientState stores an already encoded envelope for an owner and scope.
func (s *State) SeedClientState(ownerID string, scope clientstate.Scope, payload []byte) {
	s.ClientStates[stateKey(ownerID, scope)] = payload
}

func (s *State) ClientState(ownerID string, scope clientstate.Scope) []byte {
	return s.ClientStates[stateKey(ownerID, scope)]
}

func idempotencyKey(key, userID uuid.UUID) string {
	return key.String() + "/" + userID.String()
}

func (s *State) clone() *State {
	c := NewState()
	for k, v := range s.Products {
		c.Products[k] = v
	}
	for k, v := range s.Coupons {
		c.Coupons[k] = v
	}
	for k, v := range s.Users {
		c.Users[k] = v
	}
	c.Orders = append(c.Orders, s.Orders...)
	for k, v := range s.OrderStatus {
		c.OrderStatus[k] = v
	}
	for k, v := range s.ClientStates {
		c.ClientStates[k] = v
	}
	for k, v := range s.Idempotency {
		c.Idempotency[k] = v
	}
	c.Notifs = append(c.Notifs, s.Notifs...)
	for k, v := range s.Reviews {
		c.Reviews[k] = v
	}
	c.NotifyErr = s.NotifyErr
	return c
}

// UnitOfWork is the fake shared.UnitOfWork.
type UnitOfWork struct {
	State *State
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{State: NewState()}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	working := u.State.clone()
	if err := fn(ctx, &fakeTx{state: working}); err != nil {
		return err
	}
	u.State = working
	return nil
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &fakeReads{state: u.State}
}

type fakeTx struct {
	state *State
}

func (t *fakeTx) Orders() shared.OrderRepository             { return &orderRepo{state: t.state} }
func (t *fakeTx) Products() shared.ProductRepository         { return &productRepo{state: t.state} }
func (t *fakeTx) ClientStates() shared.ClientStateRepository { return &clientStateRepo{state: t.state} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository  { return &idempotencyRepo{state: t.state} }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &notificationRepo{state: t.state}
}
func (t *fakeTx) Users() shared.UserRepository     { return &userRepo{state: t.state} }
func (t *fakeTx) Reviews() shared.ReviewRepository { return &reviewRepo{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads       { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() db.DBTX                      { return nil }

type fakeReads struct {
	state *State
}

func (r *fakeReads) ProductByID(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	snap, ok := r.state.Products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) CouponByCode(_ context.Context, code string) (*shared.CouponSnapshot, error) {
	snap, ok := r.state.Coupons[code]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	for _, o := range r.state.Orders {
		if o.ID() == id {
			return &shared.OrderSnapshot{
				ID:     o.ID(),
				UserID: o.UserID(),
				Status: r.state.OrderStatus[id].String(),
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
}

func (r *fakeReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.state.Idempotency[idempotencyKey(key, userID)]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

func (r *fakeReads) ReviewByID(_ context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	snap, ok := r.state.Reviews[id]
	if !ok {
		return nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserCredential, error) {
	cred, ok := r.state.Users[email]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &cred, nil
}

func (r *fakeReads) ClientState(_ context.Context, ownerID string, scope clientstate.Scope) ([]byte, error) {
	return r.state.ClientStates[stateKey(ownerID, scope)], nil
}

type orderRepo struct {
	state *State
}

func (r *orderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
	r.state.Orders = append(r.state.Orders, o)
	r.state.OrderStatus[o.ID()] = o.Status()
	return o.ID(), nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, _ db.DBTX, orderID uuid.UUID, status order.Status) error {
	if _, ok := r.state.OrderStatus[orderID]; !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	r.state.OrderStatus[orderID] = status
	return nil
}

type productRepo struct {
	state *State
}

func (r *productRepo) Create(_ context.Context, _ db.DBTX, p *product.Product) (uuid.UUID, error) {
	r.state.Products[p.ID()] = shared.ProductSnapshot{
		ID:              p.ID(),
		Name:            p.Name(),
		PriceCents:      p.PriceCents(),
		DiscountPercent: p.DiscountPercent(),
		Stock:           p.Stock(),
		CategoryID:      p.CategoryID(),
		Kind:            p.Kind().String(),
	}
	return p.ID(), nil
}

func (r *productRepo) Update(_ context.Context, _ db.DBTX, p *product.Product) error {
	if _, ok := r.state.Products[p.ID()]; !ok {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	_, err := r.Create(context.Background(), nil, p)
	return err
}

func (r *productRepo) DecrementStock(_ context.Context, _ db.DBTX, productID uuid.UUID, quantity int32) (bool, error) {
	snap, ok := r.state.Products[productID]
	if !ok || snap.Stock < quantity {
		return false, nil
	}
	snap.Stock -= quantity
	r.state.Products[productID] = snap
	return true, nil
}

func (r *productRepo) RecalcRatingStats(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type clientStateRepo struct {
	state *State
}

func (r *clientStateRepo) Upsert(_ context.Context, _ db.DBTX, ownerID string, scope clientstate.Scope, payload []byte) error {
	r.state.ClientStates[stateKey(ownerID, scope)] = payload
	return nil
}

func (r *clientStateRepo) Delete(_ context.Context, _ db.DBTX, ownerID string, scope clientstate.Scope) error {
	delete(r.state.ClientStates, stateKey(ownerID, scope))
	return nil
}

type idempotencyRepo struct {
	state *State
}

func (r *idempotencyRepo) TryInsert(_ context.Context, _ db.DBTX, key, userID uuid.UUID, _, requestHash string, expiresAt time.Time) error {
	k := idempotencyKey(key, userID)
	if _, ok := r.state.Idempotency[k]; ok {
		return infra.WrapRepoErr("idempotency key already exists", nil, infra.KindDuplicateKey)
	}
	r.state.Idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return nil
}

func (r *idempotencyRepo) UpdateStatusCompleted(_ context.Context, _ db.DBTX, key, userID uuid.UUID, resultOrderID uuid.UUID) error {
	k := idempotencyKey(key, userID)
	rec, ok := r.state.Idempotency[k]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultOrderID = &resultOrderID
	r.state.Idempotency[k] = rec
	return nil
}

type notificationRepo struct {
	state *State
}

func (r *notificationRepo) Create(_ context.Context, _ db.DBTX, userID uuid.UUID, topic, message string, payload []byte) error {
	if r.state.NotifyErr != nil {
		return r.state.NotifyErr
	}
	r.state.Notifs = append(r.state.Notifs, Notification{
		UserID:  userID,
		Topic:   topic,
		Message: message,
		Payload: payload,
	})
	return nil
}

type userRepo struct {
	state *State
}

func (r *userRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	email := u.Email().Value()
	if _, ok := r.state.Users[email]; ok {
		return uuid.Nil, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	r.state.Users[email] = shared.UserCredential{
		ID:           u.ID(),
		Email:        email,
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
	return u.ID(), nil
}

func (r *userRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type reviewRepo struct {
	state *State
}

func (r *reviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	r.state.Reviews[rev.ID()] = shared.ReviewSnapshot{
		ID:        rev.ID(),
		UserID:    rev.UserID(),
		ProductID: rev.ProductID(),
		Rating:    rev.Rating().Value(),
		Comment:   rev.Comment().String(),
	}
	return rev.ID(), nil
}

func (r *reviewRepo) Update(_ context.Context, _ db.DBTX, reviewID uuid.UUID, rev *review.Review) error {
	snap, ok := r.state.Reviews[reviewID]
	if !ok {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	snap.Rating = rev.Rating().Value()
	snap.Comment = rev.Comment().String()
	r.state.Reviews[reviewID] = snap
	return nil
}

func (r *reviewRepo) Delete(_ context.Context, _ db.DBTX, reviewID uuid.UUID) error {
	if _, ok := r.state.Reviews[reviewID]; !ok {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	delete(r.state.Reviews, reviewID)
	return nil
}
