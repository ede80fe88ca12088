package engine

import "errors"

var (
	// ErrNoDevice indicates no mounted FAT volume matched the destination.
	ErrNoDevice = errors.New("no FAT device found")

	// ErrUserAbort indicates the user declined device selection.
	ErrUserAbort = errors.New("aborted by user")

	// ErrRootAccess indicates root privileges could not be obtained.
	ErrRootAccess = errors.New("failed to run as root")

	// ErrFatsortMissing indicates the fatsort binary is not installed.
	ErrFatsortMissing = errors.New("fatsort not found")

	// ErrBadUsage indicates an invalid source/destination combination.
	ErrBadUsage = errors.New("cannot write multiple sources to a single file")
)
