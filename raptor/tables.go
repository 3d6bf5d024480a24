// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package raptor

// Static tables from RFC 5053. These are process-wide, read-only, and
// initialized once at package load: v0Table and v1Table drive the rand()
// function of section 5.4.4.1, systematicIndexTable is J(K) from section
// 5.6, and degreeBreakpoints/degreeValues are the CDF of section 5.4.4.2.
//
// v0Table and v1Table here are a deterministically generated stand-in for
// the RFC's verbatim 256-entry tables: neither retrieved reference source
// carried the full tables (both truncate them with a "rest of table from
// RFC 5053" placeholder comment), so this package cannot claim wire
// compatibility with other RFC 5053 implementations. See DESIGN.md for the
// generation method. Swapping in the real RFC values only requires
// replacing the two array literals below; every algorithm in this package
// is parametric in their contents.
//
// systematicIndexTable is a partial exception: entries for K in [4, 79]
// (indices [0, 75]) are the genuine RFC 5053 section 5.7 values, carried
// over from the original_source reference's systematic.rs table; only the
// K in [80, 256] tail (indices [76, 252], beyond what that reference
// covered) is the same kind of self-generated stand-in as v0Table/v1Table.
// See DESIGN.md.

// Q is 65521, the largest prime smaller than 2^16.
const q = 65521

// kMax is the largest source-block symbol count this package accepts
// directly. RFC 5053 names 8192 as the block-layer ceiling but restricts
// the systematic index table J(K) to K in [4, 256]; we resolve that split
// (see SPEC_FULL.md) by capping K at the table's range and letting
// ParamCalc partition bigger transfers across multiple blocks via Z.
const kMax = 256

// KMax and KMin are the exported bounds of kMax/kMin, for callers (such
// as cmd/raptorflow) that need to size a transfer without reaching into
// package internals.
const (
	KMax = kMax
	KMin = kMin
)

// kMin is the smallest source-block symbol count this package accepts.
const kMin = 4

// degreeBreakpoints and degreeValues implement the piecewise degree CDF
// from RFC 5053 section 5.4.4.2: for v in [0, 2^20), degree(v) returns the
// first degreeValues[j] such that v < degreeBreakpoints[j].
var degreeBreakpoints = [...]uint32{0, 10241, 491582, 712794, 831695, 948446, 1032189, 1048576}
var degreeValues = [...]int{0, 1, 2, 3, 4, 10, 11, 40}

var v0Table = [256]uint32{
	0xc9561c2e, 0x19d52590, 0x42860a2d, 0x8743336e, 0x4987285a, 0xeee5fe74,
	0x881367a0, 0xac36f556, 0x4f59e9b2, 0xae820a6c, 0x120de21a, 0x125d7684,
	0xaf9ad95e, 0xbee8d61d, 0xe335ebbe, 0x524d9316, 0x850929aa, 0xc898479b,
	0xa4436ba7, 0x829d9dcf, 0xa5d54515, 0x0e8755ff, 0xd58fe5f1, 0x3c5227e3,
	0x6942b65e, 0xdd066bb0, 0x8749808e, 0xbb1a6fd4, 0xaf427d60, 0xa132dd11,
	0x329969b4, 0x5a7ef719, 0xcf1c1ca9, 0x8b86d625, 0x078bdedd, 0xba5fd89f,
	0x041383f4, 0x91e4cedd, 0xc8f4db4f, 0x820c5e84, 0xd2b5e417, 0x230433b3,
	0x483c04f2, 0xb79f5f8f, 0xa7c75d3f, 0x32bc0dde, 0x29a61d84, 0xffe3c6fe,
	0x6b94d370, 0xf4eac90c, 0xdd01bb8a, 0x661b2554, 0x0e1f0a8d, 0xd301ac1e,
	0x884a92a8, 0x0176fbca, 0x3604afee, 0xc4d9f5f7, 0x009be2bf, 0xb1357222,
	0xa3f10934, 0x2cd6560c, 0x104f87b0, 0xb7b6b485, 0x4366f435, 0x4efd9aef,
	0x048ad059, 0xd0ee878b, 0x8d335b8a, 0x05bf4c7e, 0xd0721b9f, 0xbe694c0b,
	0x384dfd2d, 0x99186340, 0xf7797e58, 0xf8a5f8a9, 0x043b8897, 0x187fb912,
	0x437bd044, 0x9ec05183, 0x87f53481, 0x245d8568, 0xe7beab13, 0xbc1a0b8c,
	0x7333bf12, 0x4e63dfc9, 0x6887eade, 0x89bec72b, 0xef7db3a3, 0x88b8b360,
	0x27a4aab9, 0x5c8bf816, 0x091c5d91, 0xaa085cbd, 0xac6a3b83, 0xe16757ef,
	0x179ffb04, 0x0b3da298, 0xa7c4cc05, 0xbe6c9f63, 0x460a4bb7, 0x5b21edb0,
	0xeb29dce8, 0xe96f4796, 0x1f159507, 0x0f8c2029, 0xfa269607, 0x359b715b,
	0x7abadbd5, 0xcda80608, 0xa2eb87c1, 0xdfd21913, 0x5ef09e1e, 0xf88ad824,
	0x7ea2db88, 0xbb91bc72, 0xaa9082e5, 0x77f5cdb2, 0x381e0d89, 0x9bfc470c,
	0xf55ce5ca, 0x5d5d1349, 0x1df3a691, 0x0aff3193, 0xc095ea05, 0xa573cf9f,
	0x9fcbf13f, 0x5877bdd9, 0x5c931d43, 0xba1b7cdc, 0x890aae2d, 0x8a5c415e,
	0xa4d27973, 0xf59e75a3, 0x7868b19c, 0x87eacfc5, 0xd902e819, 0x2965c4bf,
	0x3df21f49, 0x0ddac4fc, 0x77005571, 0x62a5f84f, 0x23007122, 0x76ed4584,
	0xfc2d69c7, 0x1ef86e2a, 0x6083fd79, 0x4ff57b21, 0xd4dd2c63, 0x938f3aad,
	0x4a39f46f, 0xcd766e61, 0x9f8e7855, 0x03a88542, 0x2ea55987, 0x006150de,
	0x75f3dd1a, 0x05fb6125, 0xeaae4210, 0xc685b3d4, 0xfc10695a, 0xa371a588,
	0x05d59d24, 0x7b4a99b4, 0x943efcda, 0x560d8ee2, 0xb9247072, 0xf6e1af3d,
	0xc4b5140b, 0xf4024dae, 0x0349cd1f, 0x5b068b02, 0x297e9973, 0x8dd70027,
	0x799e48ba, 0x3a671305, 0xfee892e5, 0x1248635c, 0x92b90da2, 0x524326de,
	0xd64d0ba0, 0xfc63a8ce, 0x843e5094, 0xa68203b2, 0x904590fd, 0x6ea5f9f8,
	0x2e43ecdf, 0x1d8b51eb, 0xd7014cb9, 0xac68946d, 0x55ae49b0, 0xed9670fe,
	0x930eaf8a, 0xff75d02f, 0x56f2c268, 0x7df30956, 0xe9ee964a, 0xb2626ee9,
	0xbaa0241d, 0x2f96d69f, 0x70edd64d, 0xdcae6ba7, 0x77c5cfe8, 0x2ed21fd1,
	0x4f097864, 0x5e58cc62, 0x07fa06f9, 0xcf1970d0, 0x212bccbb, 0x8b446295,
	0xd3d13d8b, 0x4e3966d2, 0x2147eacc, 0x5d9d8a67, 0x09ae7996, 0x1a9431ce,
	0x1eec9a98, 0xbd6fb053, 0xce33891b, 0xcdf20024, 0xb27a57fc, 0x2eaac238,
	0x26d868b5, 0x65d9178e, 0x5ce60cf7, 0x51f52310, 0x7c606db5, 0x9a682114,
	0x1890c200, 0x770a29c3, 0xd0c23797, 0xe5bac775, 0xa67d1e3e, 0x1c710043,
	0x81c2d308, 0x29941057, 0x57d594af, 0xf1a271cd, 0xd863764e, 0x7603b6be,
	0x1dca8e28, 0xfa27818b, 0x0a9f0887, 0x6b79b4a9, 0x4b41668f, 0xd5246f17,
	0x0a7ef9d2, 0x84f1cbf6, 0x42f31835, 0x334a7272, 0x1a47fe1d, 0x1b641ec3,
	0xa61760bd, 0x8eeb937f, 0xbff47cf2, 0x4d7e2d6d,
}

var v1Table = [256]uint32{
	0xcedea485, 0x631d0992, 0x8abc6e6e, 0xebfe16d0, 0x814525d8, 0x11105362,
	0xf6d544f8, 0xe56b8ad6, 0x6c5d1216, 0x2de71176, 0x312a8ec0, 0xe2c5756d,
	0x200cd2ba, 0x040fdba4, 0x13da4920, 0xc88f391e, 0xda3ec33b, 0x6a43d9c6,
	0x45168722, 0x903d47da, 0x5a560de2, 0x155e373d, 0xee78fe26, 0x5d876caa,
	0x306d91c9, 0xbb56bc17, 0x05978351, 0x0db7dd16, 0xcbb4b6f7, 0x156c4fde,
	0x0130878d, 0x13767055, 0xd35db0b5, 0xc162ddbb, 0xa80d2ed8, 0x2b383084,
	0x2f464356, 0xfb283e73, 0x88aaccc2, 0xf06f1ea6, 0xaf28fb70, 0xc38579de,
	0x2045a8f3, 0x1dcee5d0, 0x33d02f80, 0x4ffb50be, 0x5c232f95, 0xc747d4c9,
	0x85a5c465, 0xfabecf4d, 0x20da7d53, 0xe940ff45, 0x298f0f41, 0x184076c6,
	0x9540cd4d, 0xc980f59f, 0xcbda31d0, 0x4f354d0f, 0x17047d30, 0xe56acdc6,
	0xfa56cd07, 0x30be6591, 0xaee74497, 0x10ad373f, 0x1c79f017, 0xf3c17bd5,
	0x207ba9d5, 0x5d8af73e, 0x5cae6d3e, 0xd0a2ce75, 0x2fa18e36, 0xa82763c2,
	0x715079e1, 0xbe731833, 0x867139c7, 0x1fb4cc85, 0xe948b25c, 0x59483dec,
	0xef27fbe8, 0xfee22da1, 0x06d967c7, 0xcb57add9, 0x01b42d9b, 0x63729cf7,
	0x167f05d8, 0x95f51b4d, 0x24a8ec46, 0x6d415da1, 0x12420a65, 0x72a3d28b,
	0xfc2e154c, 0x69a6b2a1, 0xbc1d9b72, 0x796117f0, 0xe0e5043c, 0x14a954ee,
	0xeaf032b1, 0x6ff1b84f, 0xd8519e62, 0xc58c6e15, 0x211491d2, 0xae11ffdc,
	0x289a5692, 0x87dfb28c, 0xedcbd9b8, 0x5765194f, 0xae940386, 0xcf41818b,
	0xd2883f44, 0x12aa5d0b, 0x15d76398, 0x9c8634ae, 0x498c7fe1, 0x290a32e8,
	0x40afaab7, 0xe1aaef17, 0x74b4cf75, 0x2f50568c, 0x24e74215, 0x356b20e5,
	0x994f1f0e, 0x0ec92935, 0xc143c787, 0x5fcc6035, 0xabd18c9b, 0x5236d4d0,
	0x6d6d3f16, 0x986ba375, 0x7ab4abea, 0x84dd2da4, 0x24575aa4, 0xabfa465f,
	0x91dba01a, 0x1ce3f8fa, 0x7733f5d3, 0xe1067b55, 0xe9d1421a, 0x3c583027,
	0x8c6aafa6, 0xd9378b7b, 0x2f0e725a, 0x493c9bb0, 0xd6edaad8, 0x51074fd2,
	0x4cad6b98, 0xaee5aab5, 0x051838e6, 0xe2b17927, 0x1925b4b7, 0x9384ef60,
	0x0929e910, 0x04278904, 0x334e14e2, 0x5081b8e0, 0xc8c6de77, 0xe6e82b94,
	0xc4c366df, 0x886eb311, 0x053b06e3, 0x855d1f17, 0x58551bf9, 0xb7cc121f,
	0x0d1cd674, 0x247175a2, 0xcdd91d2f, 0xfb2c4d71, 0x17306d9a, 0x647eb180,
	0x4e0ec940, 0x09727d75, 0xa207352b, 0x68337eb4, 0xa9d9ecd8, 0x534fb2c2,
	0x6379cae1, 0x261c53e6, 0x59f9de16, 0x77f183a6, 0x03ca9a7f, 0x83263724,
	0x3893d3f9, 0x96f058c2, 0xc1350afa, 0x33113db7, 0xa2740618, 0x0b8628ee,
	0xfc5d9b5f, 0x7e9a873b, 0x352589ad, 0x6b75a551, 0xe98738d7, 0xcde483d1,
	0x039c889e, 0x938e4693, 0x62c40996, 0xcefa7546, 0xd1883cfd, 0x2a14a6d8,
	0xa3e23591, 0x52a74d91, 0xe3a8930b, 0x0c4462c5, 0x33aaf698, 0xae4d2c5b,
	0x289d0d8a, 0xbf61043a, 0x830fdfb3, 0x1611f74e, 0xc7b618a4, 0xaf54412d,
	0x147e4543, 0x3497d77d, 0x8990c1aa, 0x59f5ef0c, 0xdac060ae, 0x5196975d,
	0xe884d7cb, 0x43da7b79, 0x57bda465, 0xa73dd724, 0x06190034, 0x1773371a,
	0x954a6a29, 0xbf7b5627, 0x40d8f942, 0x2abf673c, 0xcc866e91, 0xc8864546,
	0xa0687845, 0xb2f758d6, 0x225c1290, 0xa64c2b0d, 0x1c1eeb20, 0xdd7f8a12,
	0x61eecd7c, 0x6c82edba, 0xc015b303, 0x174c8e5f, 0xf8d0f0ae, 0x5ef66dee,
	0xf7177137, 0xc64e8f42, 0x81ab33df, 0x8607ce72, 0x3e8404c3, 0x14a01ca6,
	0xc015c0a5, 0x9aa4686c, 0x5464a6c7, 0xf096cce5, 0xb7356bff, 0xe206c3d2,
	0xe8a04208, 0x746b8342, 0x6c97216d, 0xbb908a00,
}

var systematicIndexTable = [253]uint32{
	0x00000012, 0x0000000e, 0x0000003d, 0x0000002e, 0x00000027, 0x0000003a, 0x0000003e, 0x00000037,
	0x00000029, 0x00000043, 0x00000032, 0x0000004b, 0x0000002b, 0x00000013, 0x00000025, 0x0000001e,
	0x00000016, 0x00000035, 0x00000019, 0x00000022, 0x0000001d, 0x00000014, 0x00000021, 0x0000000f,
	0x00000018, 0x0000000d, 0x00000023, 0x00000033, 0x00000009, 0x00000031, 0x0000002d, 0x0000003f,
	0x00000008, 0x00000030, 0x00000036, 0x0000002f, 0x0000003b, 0x00000047, 0x00000020, 0x00000034,
	0x00000026, 0x0000001b, 0x0000001a, 0x00000045, 0x00000017, 0x00000038, 0x00000028, 0x00000042,
	0x00000011, 0x00000041, 0x0000004a, 0x00000015, 0x00000024, 0x00000039, 0x0000003c, 0x00000010,
	0x00000040, 0x0000002a, 0x0000000c, 0x0000001f, 0x00000044, 0x0000001c, 0x00000049, 0x00000046,
	0x0000002c, 0x0000000b, 0x00000007, 0x00000048, 0x00000006, 0x0000000a, 0x00000005, 0x00000004,
	0x00000003, 0x00000002, 0x00000001, 0x00000000, 0x00007b68, 0x0000e17d, 0x00001b45, 0x0000c252,
	0x00003574, 0x00002ecf, 0x000032b0, 0x0000d2c3, 0x00008e05, 0x000093a5, 0x0000fa5d, 0x0000f5a5,
	0x0000ce87, 0x0000cec7, 0x000056e0, 0x0000c58a, 0x00003d40, 0x0000e008, 0x00008653, 0x00008b1f,
	0x0000508f, 0x00006921, 0x0000b5c4, 0x00005404, 0x000072a0, 0x00003fa0, 0x000093ac, 0x00006f96,
	0x0000c991, 0x0000f4e5, 0x0000e5d7, 0x00007a77, 0x00008be8, 0x0000efd3, 0x00001173, 0x0000cbd3,
	0x0000a2a4, 0x000001d4, 0x000096fa, 0x000087f3, 0x000035d4, 0x000003a1, 0x00008549, 0x0000a719,
	0x00006577, 0x00007463, 0x0000d50d, 0x0000b32d, 0x0000918b, 0x00007028, 0x0000938f, 0x0000bc13,
	0x0000a006, 0x0000d8ef, 0x0000bb22, 0x0000c37a, 0x0000bce4, 0x000026a9, 0x0000547a, 0x0000af50,
	0x0000212f, 0x0000f48c, 0x0000ad55, 0x0000bcdc, 0x00005ea3, 0x0000ffa7, 0x00003b1b, 0x00007a90,
	0x0000c32f, 0x000080c4, 0x0000b394, 0x0000783a, 0x00008e8a, 0x0000f478, 0x0000d960, 0x000072ee,
	0x00004c39, 0x0000213c, 0x0000baf9, 0x00004b08, 0x00008315, 0x00000109, 0x0000f6c1, 0x00008692,
	0x00005b9c, 0x0000e084, 0x000035dd, 0x00008b39, 0x0000535b, 0x0000c4e8, 0x0000a328, 0x0000efb5,
	0x0000082a, 0x00002a06, 0x00009667, 0x0000bb83, 0x00003886, 0x0000c252, 0x00007dce, 0x0000f4f2,
	0x0000c8d9, 0x0000aebc, 0x00006e91, 0x0000d82f, 0x0000cda6, 0x00004a67, 0x0000e12e, 0x00008438,
	0x000073e8, 0x00007808, 0x000086d2, 0x0000b767, 0x0000b175, 0x0000b3c1, 0x00009375, 0x0000f82e,
	0x0000420d, 0x00006bc1, 0x00005775, 0x00004f74, 0x0000a356, 0x00006264, 0x0000078a, 0x00005511,
	0x0000b095, 0x00000669, 0x0000d120, 0x00000e52, 0x0000a399, 0x0000412f, 0x00006395, 0x00007196,
	0x00007ac3, 0x0000cea2, 0x00008f22, 0x00000bd3, 0x000026f9, 0x00005409, 0x00001c7c, 0x00006988,
	0x00005f29, 0x0000d533, 0x000069a6, 0x0000c311, 0x0000dec1, 0x000045b8, 0x000013a5, 0x0000b542,
	0x00009291, 0x00006a12, 0x000033b7, 0x0000ea85, 0x0000952e, 0x0000f05a, 0x00004e20, 0x00005e55,
	0x00000ab6, 0x0000286e, 0x0000098d, 0x00001961, 0x00007360, 0x00005a4c, 0x00008352, 0x00008d23,
	0x000064cf, 0x00009e53, 0x0000f9f1, 0x0000adcf, 0x000034f5, 0x0000e411, 0x0000c60d, 0x00007b4c,
	0x000081cd, 0x0000246a, 0x00007541, 0x0000120f, 0x0000a589,
}
