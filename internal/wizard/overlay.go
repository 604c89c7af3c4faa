package wizard

// At most one overlay is visible per screen. Each screen keeps a single
// discriminant value rather than independent booleans, so two overlays can
// never render at once: opening one implicitly closes the other.

// HomeOverlay identifies the overlay active on the home (creation) screen.
type HomeOverlay int

const (
	HomeOverlayNone HomeOverlay = iota
	HomeOverlayCalendar
	HomeOverlayGuestList
)

// HomeOverlays controls overlay visibility on the home screen.
type HomeOverlays struct {
	active HomeOverlay
}

// Active returns the currently visible overlay, or HomeOverlayNone.
func (o *HomeOverlays) Active() HomeOverlay { return o.active }

// Open makes v the only visible overlay.
func (o *HomeOverlays) Open(v HomeOverlay) { o.active = v }

// Close dismisses whatever overlay is visible.
func (o *HomeOverlays) Close() { o.active = HomeOverlayNone }

// DetailOverlay identifies the overlay active on the trip-detail screen.
type DetailOverlay int

const (
	DetailOverlayNone DetailOverlay = iota
	DetailOverlayUpdateTrip
	DetailOverlayCalendar
	// DetailOverlayConfirmAttendance is the mandatory gate shown to users
	// arriving through an invitation link. It has no close affordance.
	DetailOverlayConfirmAttendance
)

// DetailOverlays controls overlay visibility on the trip-detail screen.
type DetailOverlays struct {
	active DetailOverlay
}

// Active returns the currently visible overlay, or DetailOverlayNone.
func (o *DetailOverlays) Active() DetailOverlay { return o.active }

// Open makes v the only visible overlay.
// The confirm-attendance gate cannot be displaced by opening another
// overlay; it is dismissed only through CompleteConfirmation.
func (o *DetailOverlays) Open(v DetailOverlay) {
	if o.active == DetailOverlayConfirmAttendance {
		return
	}
	o.active = v
}

// Close dismisses the visible overlay. It reports false — and leaves the
// overlay up — when the confirm-attendance gate is active, since that gate
// is dismissed only by completing the confirmation action.
func (o *DetailOverlays) Close() bool {
	if o.active == DetailOverlayConfirmAttendance {
		return false
	}
	o.active = DetailOverlayNone
	return true
}

// CompleteConfirmation dismisses the confirm-attendance gate after the
// confirmation action has succeeded.
func (o *DetailOverlays) CompleteConfirmation() {
	if o.active == DetailOverlayConfirmAttendance {
		o.active = DetailOverlayNone
	}
}
