package testdata

import (
	"os"
	"path/filepath"
)

// Sample has two tempo sections, the second omitting its first barline.
const Sample = `osu file format v14

[General]
AudioFilename: audio.mp3
Mode: 1

[Metadata]
Title:Sample
Version:Hard

[Difficulty]
SliderMultiplier:1.4

[Events]
//Background and Video events

[TimingPoints]
0,500,4,2,0,100,1,0
1000,-100,4,2,0,70,0,0
2000,-50,4,2,0,70,0,1
4000,400,4,2,0,100,1,8
4500,-80,4,2,0,60,0,0


[Colours]
Combo1 : 255,0,0

[HitObjects]
256,192,500,1,0,0:0:0:0:
256,192,1500,1,0,0:0:0:0:
256,192,2500,5,0,0:0:0:0:
256,192,4400,1,0,0:0:0:0:
`

// Scenario is a 120 BPM map with a single inherited point at 1000.
const Scenario = `osu file format v14

[Metadata]
Version:Normal

[TimingPoints]
0,500,4,0,0,100,1,0
1000,-100,4,0,0,100,0,0

[HitObjects]
256,192,1000,1,0,0:0:0:0:
256,192,2000,1,0,0:0:0:0:
256,192,3000,1,0,0:0:0:0:
`

// ScenarioPair runs from 1x at 80% volume to 2x at full volume.
const ScenarioPair = "1000,-100,4,0,0,80,0,0\n3000,-50,4,0,0,100,0,0"

// Write places contents in dir and returns the path.
func Write(dir, name, contents string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); nil != err {
		return "", err
	}
	return path, nil
}
