package nativeio

import "testing"

func TestApplyFstypeCapabilitiesKnownType(t *testing.T) {
	res := StatfsResult{Fstypename: "ext4"}
	applyFstypeCapabilities(&res)
	if !res.ACLs || !res.Xattr || !res.Extents {
		t.Fatalf("ext4 should report acls/xattr/extents, got %+v", res)
	}
	if res.Compression || res.FileCompression {
		t.Fatalf("ext4 should not report compression support, got %+v", res)
	}
}

func TestApplyFstypeCapabilitiesIsCaseInsensitive(t *testing.T) {
	res := StatfsResult{Fstypename: "NTFS"}
	applyFstypeCapabilities(&res)
	if !res.ACLs || !res.Compression || !res.FileCompression {
		t.Fatalf("NTFS should report acls/compression/filecompression regardless of case, got %+v", res)
	}
}

func TestApplyFstypeCapabilitiesUnknownType(t *testing.T) {
	res := StatfsResult{Fstypename: "some-future-fs"}
	applyFstypeCapabilities(&res)
	if res.ACLs || res.Xattr || res.Extents || res.Compression || res.FileCompression {
		t.Fatalf("unknown fstype should report no capabilities, got %+v", res)
	}
}
