// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

// Below are the different metric IDs that we currently implement.
// New IDs are appended; definitions in telemetry.go must stay in sync.
const (

	// Leave out the 0 value. It's an indication of not explicitly initialized variables.
	IDInvalid = 0

	// Samples committed to output archives
	IDSamplesWritten = 1

	// Metric values written to output archives
	IDValuesWritten = 2

	// Values that could not be applied while reading an archive
	IDDecodeErrors = 3

	// Bytes written to the current archive volume
	IDArchiveBytes = 4

	// Snapshot collections attempted
	IDCollectTicks = 5

	// Snapshot collections that failed
	IDCollectErrors = 6

	// Samples decoded from input archives
	IDSamplesRead = 7

	// Metric values decoded from input archives
	IDValuesRead = 8

	// Archives uploaded to remote storage
	IDArchivesShipped = 9

	// Bytes uploaded to remote storage
	IDShipBytes = 10

	// Absolute number of goroutines when the metric was collected.
	IDAgentGoRoutines = 11

	// Absolute number in bytes of allocated heap objects of the agent.
	IDAgentHeapAlloc = 12

	// Difference to previous user CPU time of the agent in Milliseconds.
	IDAgentUTime = 13

	// Difference to previous system CPU time of the agent in Milliseconds.
	IDAgentSTime = 14

	// max number of ID values, keep this as *last entry*
	IDMax = 15
)
