package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")
var ErrForbidden = errors.New("forbidden")

var ErrEventFull = errors.New("event is full")
var ErrEventCanceled = errors.New("event is canceled")
var ErrAlreadySubscribed = errors.New("already subscribed")
var ErrNotSubscribed = errors.New("not subscribed")
var ErrNotEditable = errors.New("only upcoming events can be updated")
var ErrTooFewSeats = errors.New("fewer seats than registered participants")
