package match

import "errors"

var (
	ErrInvalidGoalIndex         = errors.New("invalid goal index")
	ErrInvalidTeamConfiguration = errors.New("invalid team configuration")
)
