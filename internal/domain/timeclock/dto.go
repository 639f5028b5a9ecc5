package timeclock

// TransitionResponse confirms a clock/break transition. Callers re-derive the
// status with a subsequent read instead of assuming the effect.
type TransitionResponse struct {
	Message string `json:"message"`
}
