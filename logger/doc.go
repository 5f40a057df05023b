// Package logger provides structured logging setup for the engine and
// its hosting application.
package logger
