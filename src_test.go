package dirsyn

import (
	"testing"
)

func TestSrc_codecov(t *testing.T) {
	var r0 X680
	var r1 X501
	var r2 X520
	var r3 RFC2307
	var r4 RFC3672
	var r5 RFC4511
	var r6 RFC4512
	var r7 RFC4514
	var r8 RFC4515
	var r9 RFC4516
	var r10 RFC4517
	var r11 RFC4523
	var r12 RFC4530

	r0.Document()
	r1.Document()
	r2.Document()
	r3.Document()
	r4.Document()
	r5.Document()
	r6.Document()
	r7.Document()
	r8.Document()
	r9.Document()
	r10.Document()
	r11.Document()
	r12.Document()
}
