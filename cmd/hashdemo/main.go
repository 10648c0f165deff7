package main

import (
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/adamsnebold/hashtable"
)

var strategies = []struct {
	name string
	fn   hashtable.Strategy
}{
	{"first-byte", hashtable.FirstByte},
	{"djb2", hashtable.DJB2},
	{"xxhash", hashtable.XXHash},
}

func defaultConfig() *hashtable.DemoConfig {
	return &hashtable.DemoConfig{
		Capacity: 13,
		Keys: []string{
			"apple", "ant", "arc", "banana", "cherry",
			"date", "fig", "grape", "kiwi", "lemon",
		},
	}
}

func main() {
	args := os.Args[1:]

	cfg := defaultConfig()
	if len(args) > 0 {
		b, err := ioutil.ReadFile(args[0])
		if err != nil {
			panic(err)
		}
		cfg, err = hashtable.DeserializeDemoConfig(b)
		if err != nil {
			panic(err)
		}
	}

	log.Infof("comparing %d strategies over %d keys, capacity %d",
		len(strategies), len(cfg.Keys), cfg.Capacity)

	for _, s := range strategies {
		t, err := hashtable.New(cfg.Capacity)
		if err != nil {
			panic(err)
		}
		t.SetLogger(log.WithField("strategy", s.name))
		for i, key := range cfg.Keys {
			t.Insert(s.fn, key, i)
		}
		st := t.Stats()
		log.Infof("%s: %d collisions, %d/%d buckets occupied, longest chain %d",
			s.name, st.Collisions, st.Occupied, st.Capacity, st.LongestChain)
		t.Display(os.Stdout)
		t.Destroy()
	}
}
