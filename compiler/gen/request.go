package gen

// Mode identifies which concrete stencil variant a dispatch branch calls.
type Mode string

const (
	// ModeOn is the staggered variant producing the shifted location.
	ModeOn Mode = "on"
	// ModeOff is the staggered variant consuming the shifted location.
	ModeOff Mode = "off"
	// ModeNorm is the single non-staggered variant.
	ModeNorm Mode = "norm"
)

// Stencil describes a concrete stencil body produced by the downstream
// generator. Only its classification matters here.
type Stencil struct {
	Name      string
	Flux      bool
	Staggered bool
}

// Request asks the downstream stencil generator for one concrete body.
type Request struct {
	// Name is the full generated symbol, e.g. "indexDDX_norm_DIFF_C2".
	Name string
	// Field is the mesh field type the body operates on.
	Field string
	// Direction and Mode record where the request came from. They are
	// metadata only: request identity is (Name, Field).
	Direction string
	Mode      Mode
	// Method is the table entry that produced the request.
	Method *Entry

	sten *Stencil
}

// Flux reports the flow classification the stencil body must honor.
func (r *Request) Flux() bool {
	return r.Method.Flow()
}

// Staggered reports the staggering classification the stencil body must honor.
func (r *Request) Staggered() bool {
	return r.Method.Staggered()
}

// Attach binds a concrete stencil body to the request. A body whose
// flux/staggered classification disagrees with the request indicates a
// modeling bug and fails with a ConsistencyError.
func (r *Request) Attach(s *Stencil) error {
	if s.Flux != r.Flux() {
		return NewConsistencyError(r.Name, s.Name, "flux classification does not match")
	}
	if s.Staggered != r.Staggered() {
		return NewConsistencyError(r.Name, s.Name, "staggered classification does not match")
	}
	r.sten = s
	return nil
}

// Stencil returns the attached body, or nil.
func (r *Request) Stencil() *Stencil {
	return r.sten
}

// Requests is an insertion-ordered, deduplicating request collection.
// Two requests with equal (Name, Field) are the same request regardless of
// direction or mode; only the first recorded one is kept, so the downstream
// generator is never asked to emit the same symbol twice.
type Requests struct {
	list []*Request
	seen map[requestKey]bool
}

type requestKey struct {
	name  string
	field string
}

// NewRequests creates an empty collection.
func NewRequests() *Requests {
	return &Requests{seen: make(map[requestKey]bool)}
}

// Add records a request unless an equal one is already present.
func (rs *Requests) Add(r *Request) {
	key := requestKey{name: r.Name, field: r.Field}
	if rs.seen[key] {
		return
	}
	rs.seen[key] = true
	rs.list = append(rs.list, r)
}

// All returns the surviving requests in insertion order.
func (rs *Requests) All() []*Request {
	return rs.list
}

// Len returns the number of surviving requests.
func (rs *Requests) Len() int {
	return len(rs.list)
}
