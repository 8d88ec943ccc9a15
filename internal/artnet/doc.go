// Package artnet receives ArtDMX packets over UDP and turns a configured
// pair of DMX channels into a brightness value for the board display.
//
// Only ArtDMX frames for the configured universe are considered; everything
// else on the wire (ArtPoll, ArtSync, other universes) is dropped without
// logging, since lighting consoles broadcast continuously.
package artnet
