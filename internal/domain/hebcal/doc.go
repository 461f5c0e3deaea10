// Package hebcal implements Hebrew calendar arithmetic: conversion between
// Gregorian dates and the traditional lunisolar Hebrew calendar, leap-year
// and month-length rules, and the weekly Torah-reading cycle.
//
// All functions are pure. Dates are bridged through an absolute day number
// (days since December 31 of the year 0 in the proleptic Gregorian calendar,
// so January 1 of year 1 is day 1), which keeps the two calendars decoupled.
package hebcal
