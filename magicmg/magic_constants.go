package magicmg

// PrecomputedMagics returns the magics found by NewMagicIndex with DefaultSeed
// and MaxMagicAttempts. Loading them skips the search at startup.
func PrecomputedMagics() MagicSet {
	return MagicSet{
		Seed: DefaultSeed,
		Bishop: [64]uint64{
			0x9240080104042044, 0x08062c0802204000, 0x0008088112000020, 0x004c040082601108,
			0x00220610401c0280, 0x0082080209000200, 0x02340202104c0940, 0x00010065040e4028,
			0x2130041c08620c00, 0x01c4022801040180, 0x0210114400820104, 0x0100082044c04000,
			0x8800040308280460, 0x1040884308601201, 0x4890010808024801, 0x0248d20a94040220,
			0x0041004828180880, 0x1008042008110050, 0x0808005400240010, 0x1092200802810060,
			0x0809017490400094, 0x0704080200960800, 0x000440140402088d, 0x000600110106c200,
			0x34201000481009c0, 0x81104c0419130400, 0x1202080805080222, 0x0a1101400404001a,
			0x03008c0040802010, 0x52088e0001004600, 0x4413190002009022, 0xc420404821840400,
			0x10822020c0041800, 0x210c092040040400, 0x0409005102080800, 0x0801011800050040,
			0x0002020018820080, 0x0002040100103000, 0x0344082180821080, 0x20080081040081d2,
			0x2883042104202008, 0x0112180118040c21, 0x00101400a8000c00, 0xc0004a8401200c00,
			0x0110010122010400, 0x0002101204604600, 0x10101028c0808100, 0x4030160206224840,
			0x0200a41022100061, 0x0042410088200010, 0x0040024404242108, 0x4048885084042002,
			0x4000002002440401, 0x40112004100d8042, 0x0010a0a8108a8042, 0x0020041144c10200,
			0x4002020096111000, 0x0800022414020800, 0x04204060c6082400, 0x0010200200228800,
			0x0800800010060204, 0x48000c6002020a02, 0x4060608842118420, 0x6070200084004040,
		},
		Rook: [64]uint64{
			0x0080004000801024, 0x2040084020001000, 0x4200086200803040, 0x21000900a0100004,
			0x1200042002000810, 0x0600100200041809, 0x8100288402004900, 0x008004c021000080,
			0x1202800021804008, 0x1008802000c00090, 0x0001004100102000, 0x0001001900100020,
			0x0801000500980090, 0x0002000200100488, 0xd034004408030290, 0x4020800100036280,
			0x2042808010c00022, 0x008089802004c000, 0x0408818010002004, 0x0400808008005006,
			0x3001808008000400, 0x8003808026008400, 0x0108840002300821, 0x20a00200010088d4,
			0x4440008480002241, 0x1004600140045001, 0x0005100080200180, 0x0400100180080080,
			0x00c8018080040009, 0x0002000a00101834, 0x0000082400100502, 0x0010409a00004401,
			0x0001800043002100, 0x000188400c802001, 0x1011100084802002, 0x1110100080801800,
			0x0000880081801400, 0x0b02002802003004, 0x0012000102002804, 0x06a5000141000082,
			0x6010400065908000, 0x10c0100801202000, 0x0080408122020010, 0x0002011040220009,
			0x2081008800110006, 0x0004008002008044, 0x00000a0001008080, 0x0042510090420004,
			0x0200604002800080, 0x08120046a3008200, 0xc013401a20010100, 0x122110028900a100,
			0x0028380081040080, 0x010a0c0080060080, 0x0001012208102400, 0x0442410084084200,
			0x4008608812004302, 0x2005084000809021, 0x0000308201084022, 0x4000100020044901,
			0x1002014448201002, 0x010200081001c406, 0x0b0088420100b004, 0x0000804400218102,
		},
	}
}
