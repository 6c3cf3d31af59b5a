// Package pipeline runs the two-phase merge: an embarrassingly
// parallel parse stage over match files, then a strictly sequential
// fold into the sift.Store.
//
// Workers never see the store; they return value results only. That
// single-writer discipline is what makes threshold pruning safe, so
// the fold stage must never be parallelized.
package pipeline
