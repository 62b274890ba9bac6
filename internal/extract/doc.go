// Package extract converts course documents into raw text.
//
// Dispatch is by file extension: PDF files are read page by page with
// "--- Page N ---" markers interleaved so downstream page attribution is a
// substring scan, DOCX files yield plain text with no page markers (DOCX has
// no fixed pagination). Any other extension returns
// types.ErrUnsupportedFormat and the walkers skip the file silently.
//
// Extraction is best effort. A corrupt file or one that yields less than
// MinTextLen characters (likely a scanned document) is reported through the
// issues report, never as a fatal error: the pipeline always continues with
// the next file.
package extract
