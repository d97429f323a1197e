package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/models"
	"github.com/adiafa-dev/e-commerce-mvp/repositories"
)

// ErrNothingSelected guards the carry-over: checkout cannot start from an
// empty selection.
var ErrNothingSelected = errors.New("no cart lines selected")

// GroupByShop partitions lines by seller in a single pass. Group order is the
// order in which each shop is first seen in the line sequence; it is never
// sorted.
func GroupByShop(lines []models.CartLine) []models.ShopGroup {
	groups := []models.ShopGroup{}
	index := map[int]int{}

	for _, line := range lines {
		i, ok := index[line.Shop.ID]
		if !ok {
			i = len(groups)
			index[line.Shop.ID] = i
			groups = append(groups, models.ShopGroup{
				ShopID:   line.Shop.ID,
				ShopName: line.Shop.Name,
				ShopLogo: line.Shop.LogoURL,
			})
		}
		groups[i].Lines = append(groups[i].Lines, line)
	}
	return groups
}

// cartViewState holds one user's last-fetched lines plus the selection. Every
// transition happens under the one mutex so a removed line and its selection
// entry never part ways.
type cartViewState struct {
	mu       sync.Mutex
	token    string
	lines    []models.CartLine
	selected map[int]struct{}
	fetchSeq uint64
}

// CartService owns the cart view state: the last-fetched lines per user, the
// selection set, grouping and totals. All cart mutations route through here so
// the refetch-after-write policy and the cart-changed signal stay uniform.
type CartService struct {
	cartRepo *repositories.CartRepository
	store    repositories.CarryOverStore
	signal   *libs.CartSignal
	logger   *zap.Logger

	mu     sync.Mutex
	states map[int]*cartViewState
}

func NewCartService(cartRepo *repositories.CartRepository, store repositories.CarryOverStore, signal *libs.CartSignal, logger *zap.Logger) *CartService {
	s := &CartService{
		cartRepo: cartRepo,
		store:    store,
		signal:   signal,
		logger:   logger,
		states:   make(map[int]*cartViewState),
	}

	// The cart view is itself a subscriber: any published change triggers its
	// own authoritative refetch with the last-known credential.
	signal.Subscribe(func(userID int) {
		st := s.state(userID)
		st.mu.Lock()
		token := st.token
		st.mu.Unlock()
		s.Refresh(context.Background(), token, userID)
	})

	return s
}

func (s *CartService) state(userID int) *cartViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[userID]
	if !ok {
		st = &cartViewState{selected: make(map[int]struct{})}
		s.states[userID] = st
	}
	return st
}

// Refresh replaces the local lines with the server's cart. Completions of
// overlapping refreshes can interleave in any order, so each fetch takes a
// sequence number and only the latest issued one may apply its result; stale
// responses are discarded. The selection is pruned to the surviving line IDs
// in the same transition.
func (s *CartService) Refresh(ctx context.Context, token string, userID int) {
	st := s.state(userID)

	st.mu.Lock()
	if token != "" {
		st.token = token
	} else {
		token = st.token
	}
	st.fetchSeq++
	seq := st.fetchSeq
	st.mu.Unlock()

	lines := s.cartRepo.FetchCart(ctx, token)

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.fetchSeq != seq {
		s.logger.Debug("discarding stale cart fetch", zap.Int("user_id", userID))
		return
	}
	st.lines = lines

	alive := make(map[int]struct{}, len(lines))
	for _, line := range lines {
		alive[line.CartLineID] = struct{}{}
	}
	for id := range st.selected {
		if _, ok := alive[id]; !ok {
			delete(st.selected, id)
		}
	}
}

// View refetches the cart and renders the grouped view with selection and the
// total over selected lines.
func (s *CartService) View(ctx context.Context, token string, userID int) models.CartViewResponse {
	s.Refresh(ctx, token, userID)

	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	return models.CartViewResponse{
		Groups:      GroupByShop(st.lines),
		SelectedIDs: selectedIDs(st.selected),
		AllSelected: len(st.lines) > 0 && len(st.selected) == len(st.lines),
		Total:       selectionTotal(st.lines, st.selected),
		LineCount:   len(st.lines),
	}
}

// Snapshot renders the current state without a refetch. Selection toggles use
// it; they change nothing server-side.
func (s *CartService) Snapshot(userID int) models.CartViewResponse {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	return models.CartViewResponse{
		Groups:      GroupByShop(st.lines),
		SelectedIDs: selectedIDs(st.selected),
		AllSelected: len(st.lines) > 0 && len(st.selected) == len(st.lines),
		Total:       selectionTotal(st.lines, st.selected),
		LineCount:   len(st.lines),
	}
}

func selectedIDs(selected map[int]struct{}) []int {
	ids := make([]int, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func selectionTotal(lines []models.CartLine, selected map[int]struct{}) int {
	total := 0
	for _, line := range lines {
		if _, ok := selected[line.CartLineID]; ok {
			total += line.Subtotal()
		}
	}
	return total
}

// ToggleSelectAll selects every line, or clears the selection when every line
// is already selected.
func (s *CartService) ToggleSelectAll(userID int) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.lines) > 0 && len(st.selected) == len(st.lines) {
		st.selected = make(map[int]struct{})
		return
	}
	for _, line := range st.lines {
		st.selected[line.CartLineID] = struct{}{}
	}
}

// ToggleSelectShop deselects the shop's lines when all of them are selected;
// otherwise it adds them to the selection (a union, other shops untouched).
func (s *CartService) ToggleSelectShop(userID, shopID int) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	shopLineIDs := []int{}
	for _, line := range st.lines {
		if line.Shop.ID == shopID {
			shopLineIDs = append(shopLineIDs, line.CartLineID)
		}
	}
	if len(shopLineIDs) == 0 {
		return
	}

	allSelected := true
	for _, id := range shopLineIDs {
		if _, ok := st.selected[id]; !ok {
			allSelected = false
			break
		}
	}

	for _, id := range shopLineIDs {
		if allSelected {
			delete(st.selected, id)
		} else {
			st.selected[id] = struct{}{}
		}
	}
}

func (s *CartService) ToggleSelectLine(userID, cartLineID int) {
	st := s.state(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	exists := false
	for _, line := range st.lines {
		if line.CartLineID == cartLineID {
			exists = true
			break
		}
	}
	if !exists {
		return
	}

	if _, ok := st.selected[cartLineID]; ok {
		delete(st.selected, cartLineID)
	} else {
		st.selected[cartLineID] = struct{}{}
	}
}

// AddLine adds a product to the cart. Whatever the outcome, the cart-changed
// signal is published so every view refetches the authoritative state; the UI
// never trusts its own guess about post-mutation state.
func (s *CartService) AddLine(ctx context.Context, token string, userID, productID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	s.rememberToken(token, userID)
	err := s.cartRepo.AddLine(ctx, token, productID, quantity)
	s.signal.Publish(userID)
	return err
}

// SetQuantity updates a line's quantity, clamped to >= 1: decrementing a line
// at quantity 1 leaves it at 1.
func (s *CartService) SetQuantity(ctx context.Context, token string, userID, cartLineID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	s.rememberToken(token, userID)
	err := s.cartRepo.SetQuantity(ctx, token, cartLineID, quantity)
	s.signal.Publish(userID)
	return err
}

func (s *CartService) RemoveLine(ctx context.Context, token string, userID, cartLineID int) error {
	s.rememberToken(token, userID)
	err := s.cartRepo.RemoveLine(ctx, token, cartLineID)
	s.signal.Publish(userID)
	return err
}

// RemoveSelected bulk-deletes the currently selected lines. The deletes run in
// parallel and partial failure is left to the refetch: local state never
// assumes all of them succeeded.
func (s *CartService) RemoveSelected(ctx context.Context, token string, userID int) error {
	st := s.state(userID)
	st.mu.Lock()
	ids := selectedIDs(st.selected)
	st.mu.Unlock()

	if len(ids) == 0 {
		return ErrNothingSelected
	}

	s.rememberToken(token, userID)
	err := s.cartRepo.RemoveLines(ctx, token, ids)
	s.signal.Publish(userID)
	return err
}

// BeginCheckout resolves the selection into full line snapshots and writes
// them wholesale to durable storage, replacing any prior carry-over. The
// checkout view loads from that storage, independent of this live state.
func (s *CartService) BeginCheckout(ctx context.Context, token string, userID int) ([]models.CartLine, error) {
	s.Refresh(ctx, token, userID)

	st := s.state(userID)
	st.mu.Lock()
	snapshots := []models.CartLine{}
	for _, line := range st.lines {
		if _, ok := st.selected[line.CartLineID]; ok {
			snapshots = append(snapshots, line)
		}
	}
	st.mu.Unlock()

	if len(snapshots) == 0 {
		return nil, ErrNothingSelected
	}

	if err := s.store.SaveSelection(ctx, userID, snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (s *CartService) rememberToken(token string, userID int) {
	if token == "" {
		return
	}
	st := s.state(userID)
	st.mu.Lock()
	st.token = token
	st.mu.Unlock()
}
