// Package wire implements the TLV record format used to pack ghost-exchange
// messages (entity records, acks, delete notices, and destination sets) for
// transport. It uses meshapi only for the Point and Param value types;
// callers supply raw fields and get a flat byte buffer back.
package wire
