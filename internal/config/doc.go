// Package config loads socksd configuration documents.
//
// A configuration location is a path template that may embed environment
// placeholders of the form ${NAME}:
//
//	${SOCKSD_HOME}/etc/socksd.json
//
// Every placeholder must resolve; a missing variable fails the load with a
// *LoadFileError before any file is touched. The resolved file is decoded as
// JSON, or as YAML when its extension is .yaml or .yml, into a Dict whose top
// level must be an object.
//
// Nothing is cached: each Load re-reads the environment and the file.
//
// # Errors
//
//   - *LoadFileError: a placeholder names an unset environment variable
//   - ErrFileNotFound: the resolved path does not exist (also matches fs.ErrNotExist)
//   - any other error: the document could not be read or decoded
//
// Settings converts a loaded Dict into the typed listener settings consumed at
// startup.
package config
