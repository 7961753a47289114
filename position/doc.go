// Package position models raw vehicle position records and the merge that
// reconciles a fresh API fetch into the persisted snapshot.
//
// The upstream API has no stable schema: the same logical field shows up
// under several spellings depending on the endpoint and the day. Each logical
// field therefore has one ordered candidate-key list, defined once in this
// package, and every lookup walks that list.
package position
