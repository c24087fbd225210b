package behavior

import "errors"

var (
	ErrEmptyFoodList = errors.New("behavior: food list is empty")
	ErrNilClock      = errors.New("behavior: clock is nil")
)
