// Package tlsroots builds the trusted root pool for the backend client.
//
// The system roots are extended with PEM certificates from a file or a
// directory (http.ca_file), for backends served behind a private CA.
package tlsroots
