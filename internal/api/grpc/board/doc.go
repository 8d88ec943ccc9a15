// Package board implements the gRPC transport for the board service.
//
// It adapts domain types to protobuf messages and exposes a server that calls
// into a provided business-service interface, including the server-streaming
// WatchBoard fan-out.
package board
