package models

import "testing"

func TestClassifyCode(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		want       SynapseKind
		recognized bool
	}{
		{
			name:       "EJ is a gap junction",
			code:       "EJ",
			want:       GapJunction(),
			recognized: true,
		},
		{
			name:       "Sp is excitatory chemical send",
			code:       "Sp",
			want:       ChemicalSend(Excitatory),
			recognized: true,
		},
		{
			name:       "R is excitatory chemical receive",
			code:       "R",
			want:       ChemicalReceive(Excitatory),
			recognized: true,
		},
		{
			name:       "unknown code defaults to excitatory send",
			code:       "Rp",
			want:       ChemicalSend(Excitatory),
			recognized: false,
		},
		{
			name:       "empty code defaults to excitatory send",
			code:       "",
			want:       ChemicalSend(Excitatory),
			recognized: false,
		},
		{
			name:       "NMJ is not in the code table and defaults",
			code:       "NMJ",
			want:       ChemicalSend(Excitatory),
			recognized: false,
		},
		{
			name:       "codes are case-sensitive",
			code:       "ej",
			want:       ChemicalSend(Excitatory),
			recognized: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, recognized := ClassifyCode(tt.code)
			if got != tt.want {
				t.Errorf("ClassifyCode(%q) kind = %v, want %v", tt.code, got, tt.want)
			}
			if recognized != tt.recognized {
				t.Errorf("ClassifyCode(%q) recognized = %v, want %v", tt.code, recognized, tt.recognized)
			}
			if only := Classify(tt.code); only != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.code, only, tt.want)
			}
		})
	}
}

func TestSynapseKind_String(t *testing.T) {
	tests := []struct {
		name string
		kind SynapseKind
		want string
	}{
		{
			name: "excitatory send",
			kind: ChemicalSend(Excitatory),
			want: "chemical-send(excitatory)",
		},
		{
			name: "inhibitory receive",
			kind: ChemicalReceive(Inhibitory),
			want: "chemical-receive(inhibitory)",
		},
		{
			name: "gap junction",
			kind: GapJunction(),
			want: "gap-junction",
		},
		{
			name: "neuromuscular junction",
			kind: NeuromuscularJunction(),
			want: "neuromuscular",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSynapseKind_Equality(t *testing.T) {
	if ChemicalSend(Excitatory) != ChemicalSend(Excitatory) {
		t.Error("identical kinds should compare equal")
	}
	if ChemicalSend(Excitatory) == ChemicalSend(Inhibitory) {
		t.Error("kinds with different polarity should not compare equal")
	}
	if ChemicalSend(Excitatory) == ChemicalReceive(Excitatory) {
		t.Error("kinds with different class should not compare equal")
	}
	if GapJunction() != GapJunction() {
		t.Error("gap junction kinds should compare equal")
	}
}
