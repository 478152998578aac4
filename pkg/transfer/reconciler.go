package transfer

import (
	"go.uber.org/zap"

	"github.com/pluqqy/shuttle/pkg/models"
)

const (
	DefaultLeftTitle  = "Available"
	DefaultRightTitle = "Selected"

	// Glyphs used when no ActionRenderer is configured
	ActionRightGlyph = "➡"
	ActionLeftGlyph  = "⬅"
)

// ActionRenderer produces the action cell for an item rendered on side
type ActionRenderer[T any] func(item T, side models.Side) string

// Props are the inputs supplied by the owning application on every render.
// Available and Selected are owned by the caller and never modified here;
// to signal a change the caller supplies a new slice.
type Props[T any] struct {
	Available    []T
	Selected     []T
	Columns      []models.Column
	LeftTitle    string
	RightTitle   string
	RenderAction ActionRenderer[T]

	// OnChange receives the complete new selection after every transfer
	OnChange func(selected []T)
}

// Reconciler is the stateful face of the transfer list. It keeps the
// latest props and the search string, and turns user transfers into
// OnChange notifications. It never adopts the selection it emits: the
// caller is the source of truth and must call SetProps with the new
// selection before the next operation.
//
// A Reconciler is not safe for concurrent use.
type Reconciler[T any, K comparable] struct {
	getID   func(T) K
	read    FieldReader[T]
	version uint64

	props  Props[T]
	search string
	memo   visibleMemo[T]

	logger *zap.Logger
}

// Option configures a Reconciler
type Option[T any, K comparable] func(*Reconciler[T, K])

// WithReader replaces the default fieldpath-based field reader
func WithReader[T any, K comparable](read FieldReader[T]) Option[T, K] {
	return func(r *Reconciler[T, K]) {
		if read != nil {
			r.read = read
		}
	}
}

// WithLogger logs every transfer at debug level
func WithLogger[T any, K comparable](logger *zap.Logger) Option[T, K] {
	return func(r *Reconciler[T, K]) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Reconciler keyed by getID
func New[T any, K comparable](getID func(T) K, opts ...Option[T, K]) *Reconciler[T, K] {
	r := &Reconciler[T, K]{
		getID:  getID,
		read:   DefaultReader[T],
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetProps replaces the caller-supplied inputs
func (r *Reconciler[T, K]) SetProps(p Props[T]) {
	r.props = p
}

// Props returns the current inputs
func (r *Reconciler[T, K]) Props() Props[T] {
	return r.props
}

// SetIdentity replaces the identity function
func (r *Reconciler[T, K]) SetIdentity(getID func(T) K) {
	r.getID = getID
	r.version++
}

// SetReader replaces the field reader
func (r *Reconciler[T, K]) SetReader(read FieldReader[T]) {
	if read == nil {
		read = DefaultReader[T]
	}
	r.read = read
	r.version++
}

// Invalidate drops the cached visible list. Use it after modifying
// records in place, which slice identity cannot detect.
func (r *Reconciler[T, K]) Invalidate() {
	r.memo.reset()
}

// Key returns the identity key of item
func (r *Reconciler[T, K]) Key(item T) K {
	return r.getID(item)
}

// Search returns the current search string
func (r *Reconciler[T, K]) Search() string {
	return r.search
}

// SetSearch replaces the search string. It is never cleared implicitly.
func (r *Reconciler[T, K]) SetSearch(query string) {
	r.search = query
}

// Visible returns the visible-available items for the current props and
// search. The result is cached until any input changes and must not be
// modified.
func (r *Reconciler[T, K]) Visible() []T {
	key := memoKey{query: r.search, version: r.version}
	available, selected := r.props.Available, r.props.Selected
	if visible, ok := r.memo.get(key, available, selected, r.props.Columns); ok {
		return visible
	}
	visible := VisibleAvailable(available, selected, r.search, r.props.Columns, r.getID, r.read)
	r.memo.put(key, available, selected, r.props.Columns, visible)
	return visible
}

// Selected returns the selection from the current props
func (r *Reconciler[T, K]) Selected() []T {
	return r.props.Selected
}

// Cell returns the display text of column for item
func (r *Reconciler[T, K]) Cell(item T, column models.Column) string {
	return r.read(item, column.Accessor)
}

// LeftTitle returns the left title, defaulting to "Available"
func (r *Reconciler[T, K]) LeftTitle() string {
	if r.props.LeftTitle == "" {
		return DefaultLeftTitle
	}
	return r.props.LeftTitle
}

// RightTitle returns the right title, defaulting to "Selected"
func (r *Reconciler[T, K]) RightTitle() string {
	if r.props.RightTitle == "" {
		return DefaultRightTitle
	}
	return r.props.RightTitle
}

// Action renders the action cell for item on side
func (r *Reconciler[T, K]) Action(item T, side models.Side) string {
	if r.props.RenderAction != nil {
		return r.props.RenderAction(item, side)
	}
	if side == models.SideLeft {
		return ActionRightGlyph
	}
	return ActionLeftGlyph
}

// TransferToRight adds item to the selection unless its key is present
func (r *Reconciler[T, K]) TransferToRight(item T) []T {
	next := TransferToRight(r.props.Selected, item, r.getID)
	return r.emit("transfer_right", next, zap.Any("key", r.getID(item)))
}

// TransferToLeft removes the selected entry sharing item's key
func (r *Reconciler[T, K]) TransferToLeft(item T) []T {
	next := TransferToLeft(r.props.Selected, item, r.getID)
	return r.emit("transfer_left", next, zap.Any("key", r.getID(item)))
}

// TransferAllVisibleToRight adds every currently visible item, using the
// live search string
func (r *Reconciler[T, K]) TransferAllVisibleToRight() []T {
	visible := r.Visible()
	next := TransferAllVisibleToRight(visible, r.props.Selected, r.getID)
	return r.emit("transfer_all_right", next, zap.Int("visible", len(visible)))
}

// TransferAllToLeft empties the selection
func (r *Reconciler[T, K]) TransferAllToLeft() []T {
	return r.emit("transfer_all_left", TransferAllToLeft[T]())
}

func (r *Reconciler[T, K]) emit(op string, next []T, fields ...zap.Field) []T {
	fields = append(fields,
		zap.String("op", op),
		zap.Int("before", len(r.props.Selected)),
		zap.Int("after", len(next)),
	)
	r.logger.Debug("selection changed", fields...)

	if r.props.OnChange != nil {
		r.props.OnChange(next)
	}
	return next
}
