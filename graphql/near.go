package graphql

// NearSelector is a similarity-search anchor: one of Weaviate's
// near-<modality> operators together with its raw argument fragment,
// e.g. `{concepts: ["biology"]}` for NearText.
//
// Each builder holds a single selector slot, so at most one modality is
// ever rendered per query; setting a second selector replaces the
// first. The zero NearSelector means no similarity anchor.
type NearSelector struct {
	modality string
	fragment string
}

// NearText anchors the search on text concepts.
func NearText(fragment string) NearSelector {
	return NearSelector{modality: "nearText", fragment: fragment}
}

// NearVector anchors the search on a raw vector, e.g. `{vector: [0.1, 0.2]}`.
func NearVector(fragment string) NearSelector {
	return NearSelector{modality: "nearVector", fragment: fragment}
}

// NearObject anchors the search on an existing object by id or beacon.
func NearObject(fragment string) NearSelector {
	return NearSelector{modality: "nearObject", fragment: fragment}
}

// NearImage anchors the search on a base64-encoded image.
func NearImage(fragment string) NearSelector {
	return NearSelector{modality: "nearImage", fragment: fragment}
}

// NearAudio anchors the search on an audio sample (multi2vec-bind).
func NearAudio(fragment string) NearSelector {
	return NearSelector{modality: "nearAudio", fragment: fragment}
}

// NearVideo anchors the search on a video sample (multi2vec-bind).
func NearVideo(fragment string) NearSelector {
	return NearSelector{modality: "nearVideo", fragment: fragment}
}

// NearThermal anchors the search on a thermal image (multi2vec-bind).
func NearThermal(fragment string) NearSelector {
	return NearSelector{modality: "nearThermal", fragment: fragment}
}

// NearIMU anchors the search on inertial sensor data (multi2vec-bind).
func NearIMU(fragment string) NearSelector {
	return NearSelector{modality: "nearIMU", fragment: fragment}
}

// NearDepth anchors the search on a depth image (multi2vec-bind).
func NearDepth(fragment string) NearSelector {
	return NearSelector{modality: "nearDepth", fragment: fragment}
}

// isSet reports whether a modality was chosen.
func (n NearSelector) isSet() bool { return n.modality != "" }

// render produces the `<modality>: <fragment>` clause text.
func (n NearSelector) render() string { return n.modality + ": " + n.fragment }
