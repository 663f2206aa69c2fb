package measurement

// MarkerPoint is a measured position and the artifact drawn for it
type MarkerPoint struct {
	Position Point3
	Handle   Handle
}

// Session is a two-point measurement driven by taps.
//
// The first two taps that hit a surface place markers; the second also
// places a label with the distance between them. The next tap, hit or miss,
// removes everything and starts over.
type Session struct {
	renderer    SceneRenderer
	markerStyle MarkerStyle
	labelStyle  LabelStyle

	points   [2]MarkerPoint
	count    int
	label    Handle
	distance float64
	text     string
}

// Option configures a Session
type Option func(*Session)

// WithMarkerStyle overrides the marker style
func WithMarkerStyle(style MarkerStyle) Option {
	return func(s *Session) {
		s.markerStyle = style
	}
}

// WithLabelStyle overrides the label style
func WithLabelStyle(style LabelStyle) Option {
	return func(s *Session) {
		s.labelStyle = style
	}
}

// NewSession creates an empty session that draws through renderer.
// A nil renderer records effects without drawing anything.
func NewSession(renderer SceneRenderer, opts ...Option) *Session {
	s := &Session{
		renderer:    renderer,
		markerStyle: DefaultMarkerStyle,
		labelStyle:  DefaultLabelStyle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state
func (s *Session) State() State {
	return State(s.count)
}

// Points returns a copy of the placed points in tap order
func (s *Session) Points() []MarkerPoint {
	out := make([]MarkerPoint, s.count)
	copy(out, s.points[:s.count])
	return out
}

// Distance returns the measured distance once both points are placed
func (s *Session) Distance() (float64, bool) {
	if s.count < 2 {
		return 0, false
	}
	return s.distance, true
}

// LabelText returns the label text, empty unless both points are placed
func (s *Session) LabelText() string {
	return s.text
}

// Tap resolves the screen point through tester and handles the result.
// A completed measurement is cleared without consulting tester.
func (s *Session) Tap(x, y float64, tester HitTester) []Effect {
	if s.count == 2 {
		return s.clear()
	}
	point, hit := tester.HitTest(x, y)
	return s.HandleTap(point, hit)
}

// HandleTap advances the state machine with an already resolved tap
func (s *Session) HandleTap(point Point3, hit bool) []Effect {
	if s.count == 2 {
		return s.clear()
	}
	if !hit {
		return nil
	}

	effects := []Effect{s.addMarker(point)}
	if s.count == 2 {
		effects = append(effects, s.addLabel())
	}
	return effects
}

// Reset removes all placed artifacts regardless of state.
// Used when the tracked world is replaced underneath the session.
func (s *Session) Reset() []Effect {
	if s.count == 0 {
		return nil
	}
	return s.clear()
}

func (s *Session) addMarker(point Point3) Effect {
	var handle Handle
	if s.renderer != nil {
		handle = s.renderer.PlaceMarker(point, s.markerStyle)
	}

	s.points[s.count] = MarkerPoint{Position: point, Handle: handle}
	s.count++

	return Effect{Kind: PlaceMarker, Position: point, Handles: []Handle{handle}}
}

func (s *Session) addLabel() Effect {
	start, end := s.points[0].Position, s.points[1].Position
	s.distance = float64(singleDistance(start, end))
	s.text = FormatDistance(s.distance)

	anchor := Point3{X: end.X, Y: end.Y + LabelOffset, Z: end.Z}
	if s.renderer != nil {
		s.label = s.renderer.PlaceLabel(s.text, anchor, s.labelStyle)
	}

	return Effect{Kind: PlaceLabel, Position: anchor, Text: s.text, Handles: []Handle{s.label}}
}

func (s *Session) clear() []Effect {
	handles := make([]Handle, 0, s.count+1)
	for _, p := range s.points[:s.count] {
		handles = append(handles, p.Handle)
	}
	if s.count == 2 {
		handles = append(handles, s.label)
	}

	if s.renderer != nil {
		for _, h := range handles {
			s.renderer.Remove(h)
		}
	}

	s.points = [2]MarkerPoint{}
	s.count = 0
	s.label = 0
	s.distance = 0
	s.text = ""

	return []Effect{{Kind: ClearAll, Handles: handles}}
}
