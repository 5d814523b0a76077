/*
Package push implements push-based (internal) iteration: a data source
drives the traversal and delivers its elements one at a time into a
caller-supplied step function, instead of being pulled element by element.

The model is a good fit for sources where keeping explicit cursor state is
awkward or expensive: trees, recursive generators, drain-style containers.
Implementing a source takes a single method, [Producer.Produce]; everything
else comes for free:

  - **Sources**: [FromSlice], [FromMap], [FromSeq], [Range], [Repeat], [Of].
  - **Adapters**: [Map], [Filter], [FilterMap], [FlatMap], [Take], [Skip],
    [StepBy], [Enumerate], [Inspect], [Chain].
  - **Terminals**: [ForEach], [Count], [Nth], [Last], [Find], [Any], [All],
    [Fold], [MinByKey], [MaxByKey], [ToSlice], [CollectInto].

# Short-circuiting

A step function stops the traversal by returning false. The stop signal
propagates transparently through every adapter layer: no adapter delivers a
further element or invokes a closure after a stop, no matter how deeply the
pipeline nests. Bounded adapters ([Take], [Nth]) additionally guarantee that
the underlying source is told to stop and never touches an element beyond
the promised bound.

# One-shot traversal

A Producer is consumed by the terminal operation that drives it. Traversal
is single-pass; construct a fresh pipeline for each run. Adapters keep all
per-traversal counters on the call stack, never in shared state.

# Limits of the model

Combining two independently paced sources (a zip operation) cannot be
expressed with push iteration: it would require pausing one source
mid-stream to wait for the other. Double-ended iteration is out for the
same reason. For those, bridge into pull iteration via [Seq] and iter.Pull.

# Performance

Pipelines compose closures over concrete element types. No element is ever
boxed, no intermediate collection is materialized, and counting length-known
chains skips traversal entirely.
*/
package push
