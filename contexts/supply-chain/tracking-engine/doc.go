// Package trackingengine implements the shipment tracking engine inside the
// supply-chain context.
//
// The module owns shipment lifecycle orchestration (create/status updates),
// shard registration, validator-attested transit checkpoints, and the
// participant trust score recurrence. State lives behind one repository port
// so each command is applied as a single atomic mutation; outbox rows are
// appended inside the same boundary and relayed by a worker.
package trackingengine
