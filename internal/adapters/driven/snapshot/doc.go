// Package snapshot decodes and encodes the video knowledge-base snapshot.
//
// A snapshot is a JSON document with a top-level "videos" object keyed by
// video ID. Each video has three optional sections: "metadata",
// "creative_insight" and "custom_info". Decoding is lenient per record: a
// malformed section is replaced by its defaults and reported, and a video
// that is not a JSON object is skipped and reported. Only a document that
// cannot be parsed at all is an error.
//
// The Builder type is shared with the SQLite store, which keeps the same
// three sections as JSON columns.
package snapshot
