package tui

import "errors"

// ErrUserQuit reports that the user left the program without completing the
// flow, e.g. quitting from the sign-in screen.
var ErrUserQuit = errors.New("user quit")

// ErrNoOfflineAccess reports that the server is unreachable and no offline
// unlock PIN has been configured on this device.
var ErrNoOfflineAccess = errors.New("server unreachable and no offline pin configured")
