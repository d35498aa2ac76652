package core

import "obs-pkgver/internal/types"

const sampleSearchResponse = `<collection matches="5">
  <binary name="neofetch" project="openSUSE:Factory" package="neofetch" repository="snapshot" version="7.1.0" release="1.1" arch="noarch" filename="neofetch-7.1.0-1.1.noarch.rpm" baseproject="openSUSE:Factory" type="rpm"/>
  <binary name="neofetch" project="utilities" package="neofetch" repository="openSUSE_Tumbleweed" version="7.1.0" release="3.2" arch="noarch" filename="neofetch-7.1.0-3.2.noarch.rpm" baseproject="openSUSE:Factory" type="rpm"/>
  <binary name="neofetch" project="openSUSE:Leap:15.2" package="neofetch" repository="standard" version="7.0.0" release="lp152.1.1" arch="noarch" filename="neofetch-7.0.0-lp152.1.1.noarch.rpm" baseproject="openSUSE:Leap:15.2" type="rpm"/>
  <binary name="neofetch" project="openSUSE:Leap:15.2:Update" package="neofetch.13254" repository="standard" version="7.1.0" release="lp152.2.3.1" arch="noarch" filename="neofetch-7.1.0-lp152.2.3.1.noarch.rpm" baseproject="openSUSE:Leap:15.2" type="rpm"/>
  <binary name="neofetch" project="utilities" package="neofetch" repository="openSUSE_Leap_15.2" version="7.1.0" release="lp152.3.1" arch="noarch" filename="neofetch-7.1.0-lp152.3.1.noarch.rpm" baseproject="openSUSE:Leap:15.2" type="rpm"/>
</collection>
`

func officialFactory(version, release string) types.PublicationRecord {
	return types.PublicationRecord{Project: "openSUSE:Factory", Repository: "snapshot", Package: "pkg", Version: version, Release: release}
}

func leapBase(version, release string) types.PublicationRecord {
	return types.PublicationRecord{Project: "openSUSE:Leap:15.2", Repository: "standard", Package: "pkg", Version: version, Release: release}
}

func leapUpdate(pkg, version, release string) types.PublicationRecord {
	return types.PublicationRecord{Project: "openSUSE:Leap:15.2:Update", Repository: "standard", Package: pkg, Version: version, Release: release}
}

func experimental(project, repository, version, release string) types.PublicationRecord {
	return types.PublicationRecord{Project: project, Repository: repository, Package: "pkg", Version: version, Release: release}
}

func ruleFor(key types.TrackKey) types.TrackRule {
	for _, rule := range DefaultTrackRules() {
		if rule.Key == key {
			return rule
		}
	}
	panic("unknown track " + string(key))
}
