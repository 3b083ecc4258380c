// Package model provides the data structures shared between the tween package
// and its program options. It describes programs and steps to observers
// (measure, drawer) without exposing any of the timing machinery.
package model
