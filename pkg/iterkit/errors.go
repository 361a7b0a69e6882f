package iterkit

import "go.llib.dev/frameless/pkg/errorkit"

// ErrInvalidArgument is returned when an adapter is constructed with arguments it cannot work with,
// such as a Range with a zero step.
const ErrInvalidArgument errorkit.Error = "ErrInvalidArgument"
