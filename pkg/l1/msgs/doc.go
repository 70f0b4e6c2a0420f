// Package msgs defines the messages the expander publishes over L1 transports.
package msgs
