// Package segment splits extracted document text into exercise records.
//
// Segmentation is an ordered chain of heuristic strategies tried until one
// yields records:
//
//  1. MarkerStrategy: explicit "Ejercicio/Problema/Pregunta N" markers.
//  2. ListStrategy: generic "N." / "N)" numbered lines, consulted only when
//     the marker pass found nothing.
//  3. WholeDocStrategy: the entire document as a single material record.
//
// A strategy either produces records or defers to the next one, so the
// priority and fallback behavior is a first-class contract.
//
// Heuristic, best-effort segmentation is acceptable here because false
// negatives degrade gracefully to the whole-document fallback rather than
// producing no output. False positives (non-exercise text misclassified) are
// not filtered; that is a known precision/recall tradeoff, not a bug.
package segment
