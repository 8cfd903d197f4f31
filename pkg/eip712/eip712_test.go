package eip712

import "testing"

func TestDomainSeparatorsDiffer(t *testing.T) {
	mainnet := HostChainDomainSeparator(42161)
	testnet := HostChainDomainSeparator(421614)
	if mainnet == testnet {
		t.Fatal("mainnet and testnet domain separators must differ")
	}
	if mainnet == AgentDomainSeparator {
		t.Fatal("agent domain must differ from host-chain domain")
	}
}

func TestAgentStructHashVariesWithSource(t *testing.T) {
	var conn [32]byte
	conn[0] = 0xab
	a := AgentStructHash("a", conn)
	b := AgentStructHash("b", conn)
	if a == b {
		t.Fatal("agent struct hash must depend on source")
	}
}

func TestSigningHashDeterministic(t *testing.T) {
	var structHash [32]byte
	structHash[0] = 0x01
	h1 := SigningHash(AgentDomainSeparator, structHash)
	h2 := SigningHash(AgentDomainSeparator, structHash)
	if h1 != h2 {
		t.Fatal("signing hash must be a pure function of its inputs")
	}
}

func TestUsdSendStructHashSensitiveToEveryField(t *testing.T) {
	base := UsdSend{HyperliquidChain: "Mainnet", Destination: "0x1", Amount: "1", Time: 1}
	variants := []UsdSend{
		{HyperliquidChain: "Testnet", Destination: "0x1", Amount: "1", Time: 1},
		{HyperliquidChain: "Mainnet", Destination: "0x2", Amount: "1", Time: 1},
		{HyperliquidChain: "Mainnet", Destination: "0x1", Amount: "2", Time: 1},
		{HyperliquidChain: "Mainnet", Destination: "0x1", Amount: "1", Time: 2},
	}
	baseHash := base.StructHash()
	for i, v := range variants {
		if v.StructHash() == baseHash {
			t.Fatalf("variant %d did not change struct hash", i)
		}
	}
}
