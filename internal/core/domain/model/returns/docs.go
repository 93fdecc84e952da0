// Package returns contains the Return aggregate and its workflow state
// machine. A return references an existing shipment, carries one or more
// product lines and moves pending -> shipped -> received (or directly
// pending -> received). Reaching received triggers, exactly once, a
// "returned" entry in the shipment's status history; the Advance method
// reports that moment to the caller via receivedNow.
package returns
