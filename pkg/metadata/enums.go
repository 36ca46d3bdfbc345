package metadata

// AEMode is the auto-exposure mode reported in a result snapshot.
type AEMode int

const (
	AEModeOff AEMode = iota
	AEModeOn
	AEModeOnAutoFlash
	AEModeOnAlwaysFlash
	AEModeOnAutoFlashRedeye
)

func (m AEMode) String() string {
	switch m {
	case AEModeOff:
		return "OFF"
	case AEModeOn:
		return "ON"
	case AEModeOnAutoFlash:
		return "ON_AUTO_FLASH"
	case AEModeOnAlwaysFlash:
		return "ON_ALWAYS_FLASH"
	case AEModeOnAutoFlashRedeye:
		return "ON_AUTO_FLASH_REDEYE"
	}
	return "UNKNOWN"
}

// AEState is the auto-exposure convergence state.
type AEState int

const (
	AEStateInactive AEState = iota
	AEStateSearching
	AEStateConverged
	AEStateLocked
	AEStateFlashRequired
	AEStatePrecapture
)

func (s AEState) String() string {
	switch s {
	case AEStateInactive:
		return "INACTIVE"
	case AEStateSearching:
		return "SEARCHING"
	case AEStateConverged:
		return "CONVERGED"
	case AEStateLocked:
		return "LOCKED"
	case AEStateFlashRequired:
		return "FLASH_REQUIRED"
	case AEStatePrecapture:
		return "PRECAPTURE"
	}
	return "UNKNOWN"
}

// FlashMode is the flash unit state reported in a result snapshot.
type FlashMode int

const (
	FlashModeOff FlashMode = iota
	FlashModeSingle
	FlashModeTorch
)

func (m FlashMode) String() string {
	switch m {
	case FlashModeOff:
		return "OFF"
	case FlashModeSingle:
		return "SINGLE"
	case FlashModeTorch:
		return "TORCH"
	}
	return "UNKNOWN"
}

// AntibandingMode is the auto-exposure antibanding mode.
type AntibandingMode int

const (
	AntibandingModeOff AntibandingMode = iota
	AntibandingMode50Hz
	AntibandingMode60Hz
	AntibandingModeAuto
)

func (m AntibandingMode) String() string {
	switch m {
	case AntibandingModeOff:
		return "OFF"
	case AntibandingMode50Hz:
		return "50HZ"
	case AntibandingMode60Hz:
		return "60HZ"
	case AntibandingModeAuto:
		return "AUTO"
	}
	return "UNKNOWN"
}

// AFMode is the autofocus mode.
type AFMode int

const (
	AFModeOff AFMode = iota
	AFModeAuto
	AFModeMacro
	AFModeContinuousVideo
	AFModeContinuousPicture
	AFModeEDOF
)

func (m AFMode) String() string {
	switch m {
	case AFModeOff:
		return "OFF"
	case AFModeAuto:
		return "AUTO"
	case AFModeMacro:
		return "MACRO"
	case AFModeContinuousVideo:
		return "CONTINUOUS_VIDEO"
	case AFModeContinuousPicture:
		return "CONTINUOUS_PICTURE"
	case AFModeEDOF:
		return "EDOF"
	}
	return "UNKNOWN"
}

// AWBMode is the auto-white-balance mode.
type AWBMode int

const (
	AWBModeOff AWBMode = iota
	AWBModeAuto
	AWBModeIncandescent
	AWBModeFluorescent
	AWBModeWarmFluorescent
	AWBModeDaylight
	AWBModeCloudyDaylight
	AWBModeTwilight
	AWBModeShade
)

func (m AWBMode) String() string {
	switch m {
	case AWBModeOff:
		return "OFF"
	case AWBModeAuto:
		return "AUTO"
	case AWBModeIncandescent:
		return "INCANDESCENT"
	case AWBModeFluorescent:
		return "FLUORESCENT"
	case AWBModeWarmFluorescent:
		return "WARM_FLUORESCENT"
	case AWBModeDaylight:
		return "DAYLIGHT"
	case AWBModeCloudyDaylight:
		return "CLOUDY_DAYLIGHT"
	case AWBModeTwilight:
		return "TWILIGHT"
	case AWBModeShade:
		return "SHADE"
	}
	return "UNKNOWN"
}

// AWBState is the auto-white-balance convergence state.
type AWBState int

const (
	AWBStateInactive AWBState = iota
	AWBStateSearching
	AWBStateConverged
	AWBStateLocked
)

func (s AWBState) String() string {
	switch s {
	case AWBStateInactive:
		return "INACTIVE"
	case AWBStateSearching:
		return "SEARCHING"
	case AWBStateConverged:
		return "CONVERGED"
	case AWBStateLocked:
		return "LOCKED"
	}
	return "UNKNOWN"
}
