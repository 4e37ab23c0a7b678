// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stdp is the overall repository for a time-stepped spiking network
simulator: leaky integrate-and-fire populations connected by delayed,
conductance-based synapses whose weights learn with spike-timing-dependent
plasticity.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages, one per mechanism:

* lif: leaky integrate-and-fire neuron populations.

* conn: static sparse connectivity (fixed probability, all-to-all,
one-to-one) with per-edge weights and weight initializers.

* delay: spike delay lines.

* syn: exponentially decaying synaptic conductances.

* chans: conductance-based (COBA) synaptic current.

* stdp: the pair-based STDP learning rule with pre and post traces.

* sim: the network and its fixed-order step, the lazy Runner over a time
axis, and the error types.

* inputs, record, config: input waveforms, etable-based step logs, and
YAML run configuration.

* cmd/stdpsim: a command line program to run configured experiments.
*/
package stdp
