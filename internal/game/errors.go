package game

import "errors"

// Rejections. A rejected action leaves the game untouched.
var (
	ErrIllegalTransition = errors.New("not possible from this screen")
	ErrNotEnoughEnergy   = errors.New("not enough energy")
	ErrNotEnoughMoney    = errors.New("not enough money")
	ErrRosterFull        = errors.New("the bar is full")
	ErrSelection         = errors.New("select exactly two customers")
	ErrRestLimit         = errors.New("rested enough for today")
	ErrNotFound          = errors.New("no such thing here")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrNotSatisfied      = errors.New("milestone not reached yet")
	ErrAlreadyHired      = errors.New("already hired")
	ErrNotHired          = errors.New("not on the payroll")
	ErrResolved          = errors.New("mail already answered")
	ErrAlreadyServed     = errors.New("customer already served")
	ErrMixerFull         = errors.New("the glass is full")
	ErrEmptyMixer        = errors.New("the glass is empty")
	ErrNotYourTurn       = errors.New("wait for your turn")
	ErrCombatOver        = errors.New("the fight is over")
	ErrBusy              = errors.New("busy, try again in a moment")
)
